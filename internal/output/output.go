// Package output provides styled terminal output for the glaze CLI.
//
// All user-facing text goes through this package for consistent UX.
// Functions use lipgloss for styling but abstract away the details from callers.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message with a green check mark.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Executable created: dist/MyApp")
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints an error message with a red cross.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("PyInstaller exited with status 1")
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Warn prints a warning with a yellow marker.
// Use this for non-fatal problems the run continues past.
//
// Example:
//
//	output.Warn("pillow - may already be installed or failed")
func Warn(msg string) {
	fmt.Println(warnStyle.Render("⚠ " + msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
//
// Example:
//
//	output.Info("Analyzing code for dependencies...")
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
// Use this for sub-items under a status line.
//
// Example:
//
//	output.Step("Detected imports: tkinter, requests")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message with 🔍 only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("Running: python3 -m pip install pillow")
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("🔍 " + msg))
	}
}
