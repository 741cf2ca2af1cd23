package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glazeapp/glaze/internal/detect"
	"github.com/glazeapp/glaze/internal/output"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// DetectCmd creates the 'detect' command: the scan and resolution steps
// of a build, without building anything
func DetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Scan Python code and report resolved dependencies",
		Long: `Scans Python source for import statements and reports what a build
would install and which hidden imports PyInstaller would be told about.

Accepts a file, a directory (scanned recursively for *.py), or code piped
on stdin.

Examples:
  glaze detect app.py
  glaze detect src/
  cat app.py | glaze detect`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			imports, err := detectTarget(args)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			res := detect.Resolve(imports, nil, nil)

			list := "None"
			if len(imports) > 0 {
				list = strings.Join(imports, ", ")
			}
			output.Info("Detected imports: " + list)

			if len(res.Packages) > 0 {
				output.Info("Packages to install:")
				for _, pkg := range res.Packages {
					output.Step(pkg)
				}
			} else {
				output.Info("Packages to install: none")
			}

			if len(res.HiddenImports) > 0 {
				output.Info(fmt.Sprintf("Hidden imports (%d):", len(res.HiddenImports)))
				for _, module := range res.HiddenImports {
					output.Step(module)
				}
			}

			for _, lib := range res.CollectAll {
				output.Info("Full collection required: " + lib)
			}
		},
	}

	return cmd
}

func detectTarget(args []string) ([]string, error) {
	if len(args) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return nil, fmt.Errorf("nothing to scan: pass a file or directory, or pipe code on stdin")
		}
		code, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return detect.ScanSource(string(code)), nil
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s: %w", args[0], err)
	}
	if info.IsDir() {
		return detect.ScanDir(args[0])
	}
	return detect.ScanFile(args[0])
}
