package commands

import (
	"github.com/glazeapp/glaze"
	"github.com/glazeapp/glaze/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the glaze CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "glaze",
		Short: "Package Python code into standalone executables",
		Long: `glaze turns Python code into a single-file native executable.

It wraps pip and PyInstaller so you can:
• Paste a script and get a runnable binary
• Auto-detect GUI frameworks and their hidden imports
• Bundle icons, images, and data files
• Keep builds repeatable with a glaze.yml manifest

Learn more: https://github.com/glazeapp/glaze`,
		Version: glaze.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
