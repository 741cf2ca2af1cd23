package commands

import (
	"os"

	"github.com/glazeapp/glaze/internal/buildspec"
	"github.com/glazeapp/glaze/internal/input"
	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/project"
	"github.com/spf13/cobra"
)

// InitCmd creates the 'init' command for seeding a glaze.yml manifest
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a glaze.yml manifest for this project",
		Long: `Writes a starter glaze.yml seeded from the current directory:
the app name comes from pyproject.toml or the directory name, packages
from pyproject.toml dependencies or requirements.txt, and the entry
script from a lone root-level *.py file.

Example:
  glaze init`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if buildspec.HasManifest(".") && !force {
				if !input.Confirm("glaze.yml already exists. Overwrite?", false) {
					output.Info("Keeping existing glaze.yml")
					return
				}
			}

			info, err := project.Detect(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			req := &buildspec.Request{
				AppName:    info.Name,
				Script:     info.Script,
				OutputDir:  ".",
				Console:    true,
				AutoDetect: true,
				Packages:   info.Packages,
			}

			if err := buildspec.SaveManifest(req, "."); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success("Created glaze.yml")
			if info.Script != "" {
				output.Step("entry script: " + info.Script)
			}
			output.Info("Next steps:")
			output.Step("review glaze.yml")
			output.Step("glaze package")
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing glaze.yml without asking")

	return cmd
}
