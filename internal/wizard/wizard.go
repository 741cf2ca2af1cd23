// Package wizard assembles a build request through a fixed sequence of
// terminal prompts. There is no state machine: every run asks the same
// questions in the same order, and the answers land in one Request.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glazeapp/glaze/internal/buildspec"
	"github.com/glazeapp/glaze/internal/detect"
	"github.com/glazeapp/glaze/internal/input"
	"github.com/glazeapp/glaze/internal/output"
)

// ErrNoCode reports that the wizard ended because no code was entered.
var ErrNoCode = errors.New("no code provided")

// Run walks the user through one build request. The returned request has
// been validated. When the user submits no code at all, Run prints a short
// notice and returns ErrNoCode; the caller should exit cleanly.
func Run() (*buildspec.Request, error) {
	printBanner()

	appName := input.Prompt("Enter application name", "MyApp")

	fmt.Println()
	fmt.Println("Enter your Python code (type 'END' on a new line when finished):")
	fmt.Println("Tip: Use tkinter, PyQt, PIL, pygame, or any Python library!")
	fmt.Println()
	code := input.Multiline("END")

	if strings.TrimSpace(code) == "" {
		fmt.Println("No code provided. Exiting.")
		return nil, ErrNoCode
	}

	fmt.Println()
	fmt.Println("--- Basic Settings ---")

	// GUI apps default to a hidden console window
	console := input.Confirm("Show console window?", !detect.LooksLikeGUI(code))
	iconPath := input.Prompt("Icon file path (.ico/.icns, leave blank for none)", "")
	outputDir := input.Prompt("Output directory", ".")

	fmt.Println()
	fmt.Println("--- Additional Resources (Optional) ---")
	fmt.Println("Include images, data files, or folders?")
	fmt.Println("Format: logo.png, data.txt:data, images_folder->assets")
	filesInput := input.Prompt("Files (comma-separated, leave blank for none)", "")

	fmt.Println()
	fmt.Println("--- Advanced Options (Optional) ---")
	autoDetect := input.Confirm("Auto-detect dependencies?", true)

	req := &buildspec.Request{
		AppName:    appName,
		Code:       code,
		OutputDir:  outputDir,
		IconPath:   iconPath,
		Console:    console,
		DataFiles:  buildspec.ParseFileList(filesInput),
		AutoDetect: autoDetect,
	}

	if autoDetect {
		output.Success("Will auto-detect and install dependencies")
	} else {
		req.HiddenImports = splitList(input.Prompt("Hidden imports (comma-separated)", ""))
		req.Packages = splitList(input.Prompt("Packages to install (comma-separated)", ""))
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func printBanner() {
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Println("🐍 Glaze - Python code to executable packager")
	fmt.Println("   Full support for GUI, images, and all modules")
	fmt.Println(line)
	fmt.Println()
}

// splitList splits a comma-separated answer, dropping empties.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
