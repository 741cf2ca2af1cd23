// Package input provides interactive terminal input utilities.
//
// The glaze wizard reads all of its answers through this package. Input
// comes from a settable reader so tests can script entire sessions.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	reader = bufio.NewReader(os.Stdin)
)

// SetReader replaces the input source. Tests use this to script answers;
// the CLI can point it at a file when stdin is not a terminal.
func SetReader(r io.Reader) {
	reader = bufio.NewReader(r)
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	appName := input.Prompt("Application name", "MyApp")
//	// Displays: Application name (MyApp): _
func Prompt(message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}

	return line
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// If defaultYes is true, pressing Enter returns true. Otherwise, returns false.
//
// Example:
//
//	if input.Confirm("Auto-detect dependencies?", true) {
//	    // User said yes (or pressed Enter)
//	}
//	// Displays: Auto-detect dependencies? [Y/n]: _
func Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " +
		hintStyle.Render(hint) + ": ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return defaultYes
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes
	}

	return line == "y" || line == "yes"
}

// Multiline reads lines until one equals the sentinel (ignoring surrounding
// whitespace) or input ends. The sentinel line is not included. Lines keep
// their original indentation, which matters for Python source.
//
// Example:
//
//	code := input.Multiline("END")
func Multiline(sentinel string) string {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err != nil && line == "" {
			break
		}
		if strings.TrimSpace(line) == sentinel {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.Join(lines, "\n")
}
