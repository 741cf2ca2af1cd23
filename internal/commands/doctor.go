package commands

import (
	"context"
	"os"

	"github.com/glazeapp/glaze/internal/config"
	"github.com/glazeapp/glaze/internal/exec"
	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/pyenv"
	"github.com/spf13/cobra"
)

// DoctorCmd creates the 'doctor' command for checking the Python toolchain
func DoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the Python toolchain glaze depends on",
		Long: `Reports which Python interpreter glaze would use and whether pip and
PyInstaller are available. PyInstaller is optional here: glaze installs
it automatically before the first build.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			settings, err := config.Load()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			env, err := pyenv.Discover(ctx, exec.NewExecutor(nil), settings.Interpreter)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			healthy := true

			if version, err := env.Version(ctx); err == nil {
				output.Success(version + " (" + env.Interpreter() + ")")
			} else {
				output.Error("Python: " + err.Error())
				healthy = false
			}

			if version, err := env.PipVersion(ctx); err == nil {
				output.Success(version)
			} else {
				output.Error("pip is not available; glaze cannot install packages without it")
				healthy = false
			}

			if version, err := env.PyInstallerVersion(ctx); err == nil {
				output.Success("PyInstaller " + version)
			} else {
				output.Warn("PyInstaller not installed (glaze installs it on first build)")
			}

			if !healthy {
				os.Exit(1)
			}
		},
	}
}
