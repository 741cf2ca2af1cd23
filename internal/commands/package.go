package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glazeapp/glaze/internal/buildspec"
	"github.com/glazeapp/glaze/internal/bundler"
	"github.com/glazeapp/glaze/internal/config"
	"github.com/glazeapp/glaze/internal/detect"
	"github.com/glazeapp/glaze/internal/exec"
	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/pyenv"
	"github.com/glazeapp/glaze/internal/wizard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// PackageCmd creates the 'package' command, the main build flow
func PackageCmd() *cobra.Command {
	var (
		file          string
		name          string
		outputDir     string
		icon          string
		windowed      bool
		noDetect      bool
		hiddenImports []string
		packages      []string
		dryRun        bool
	)

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Build a standalone executable from Python code",
		Long: `Builds a single-file executable with PyInstaller.

Where the code comes from:
  glaze package                    # interactive wizard (or glaze.yml if present)
  glaze package --file app.py      # package an existing script
  cat app.py | glaze package       # read the script from stdin

Dependencies are auto-detected from import statements unless --no-detect
is set; detected GUI frameworks pull in their hidden imports and pip
packages automatically.

Examples:
  glaze package -f app.py --name Calculator -o dist
  glaze package -f gui.py --windowed --icon app.ico
  glaze package -f app.py --dry-run`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			req, err := assembleRequest(file, name, outputDir, icon, windowed, noDetect, hiddenImports, packages)
			if err != nil {
				if errors.Is(err, wizard.ErrNoCode) {
					return
				}
				output.Error(err.Error())
				os.Exit(1)
			}

			if err := runBuild(context.Background(), req, dryRun); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Python script to package (skips the wizard)")
	cmd.Flags().StringVar(&name, "name", "", "Application name (default: script name)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory for the executable")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon file (.ico/.icns)")
	cmd.Flags().BoolVar(&windowed, "windowed", false, "Hide the console window (GUI apps)")
	cmd.Flags().BoolVar(&noDetect, "no-detect", false, "Skip dependency auto-detection")
	cmd.Flags().StringSliceVar(&hiddenImports, "hidden-import", nil, "Extra hidden imports (repeatable)")
	cmd.Flags().StringSliceVar(&packages, "package", nil, "Extra pip packages to install (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the PyInstaller command without building")

	return cmd
}

// assembleRequest picks the input mode: an explicit --file, a glaze.yml
// manifest, piped stdin, or the interactive wizard, in that order.
func assembleRequest(file, name, outputDir, icon string, windowed, noDetect bool, hiddenImports, packages []string) (*buildspec.Request, error) {
	if file != "" {
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(file), ".py")
		}
		return &buildspec.Request{
			AppName:       name,
			Script:        file,
			OutputDir:     outputDir,
			IconPath:      icon,
			Console:       !windowed,
			AutoDetect:    !noDetect,
			HiddenImports: hiddenImports,
			Packages:      packages,
		}, nil
	}

	if buildspec.HasManifest(".") {
		output.Info("Using glaze.yml")
		return buildspec.LoadManifest(".")
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return requestFromStdin(name, outputDir, icon, windowed, noDetect, hiddenImports, packages)
	}

	return wizard.Run()
}

func requestFromStdin(name, outputDir, icon string, windowed, noDetect bool, hiddenImports, packages []string) (*buildspec.Request, error) {
	code, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(code)) == "" {
		return nil, fmt.Errorf("no code on stdin")
	}
	if name == "" {
		name = "MyApp"
	}
	return &buildspec.Request{
		AppName:       name,
		Code:          string(code),
		OutputDir:     outputDir,
		IconPath:      icon,
		Console:       !windowed,
		AutoDetect:    !noDetect,
		HiddenImports: hiddenImports,
		Packages:      packages,
	}, nil
}

// runBuild drives the whole pipeline: interpreter discovery, PyInstaller
// bootstrap, dependency resolution, pip installs, then the build itself.
func runBuild(ctx context.Context, req *buildspec.Request, dryRun bool) error {
	if err := req.Validate(); err != nil {
		return err
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}

	executor := exec.NewExecutor(nil)
	env, err := pyenv.Discover(ctx, executor, settings.Interpreter)
	if err != nil {
		return err
	}

	if !dryRun {
		if err := env.EnsurePyInstaller(ctx); err != nil {
			return err
		}
	}

	res := resolveDependencies(req)

	if !dryRun {
		env.InstallPackages(ctx, res.Packages)
	}

	builder := bundler.New(env)
	builder.SetDryRun(dryRun)

	result, err := builder.Build(ctx, req, &res)
	if err != nil {
		return err
	}
	if result.DryRun {
		return nil
	}

	reportResult(req, result)
	if !result.OK {
		os.Exit(1)
	}
	return nil
}

// resolveDependencies scans the code when auto-detection is on and merges
// the result with any manual lists on the request.
func resolveDependencies(req *buildspec.Request) detect.Resolution {
	if !req.AutoDetect {
		return detect.Resolve(nil, req.Packages, req.HiddenImports)
	}

	output.Info("Analyzing code for dependencies...")

	var imports []string
	if req.Code != "" {
		imports = detect.ScanSource(req.Code)
	} else if req.Script != "" {
		fileImports, err := detect.ScanFile(req.Script)
		if err != nil {
			output.Warn("Could not scan " + req.Script + ": " + err.Error())
		}
		imports = fileImports
	}

	list := "None"
	if len(imports) > 0 {
		list = strings.Join(imports, ", ")
	}
	output.Step("Detected imports: " + list)

	return detect.Resolve(imports, req.Packages, req.HiddenImports)
}

func reportResult(req *buildspec.Request, result *bundler.Result) {
	line := strings.Repeat("=", 60)

	if !result.OK {
		fmt.Println(line)
		output.Error("BUILD FAILED")
		fmt.Println(line)
		fmt.Print(result.Stderr)
		if !strings.HasSuffix(result.Stderr, "\n") {
			fmt.Println()
		}
		if result.Hint != "" {
			fmt.Println()
			fmt.Println(result.Hint)
		}
		return
	}

	fmt.Println(line)
	output.Success("Executable created successfully!")
	fmt.Println(line)
	fmt.Printf("📍 Location: %s\n", result.ExePath)
	fmt.Printf("📊 Size: %.2f MB\n", float64(result.Size)/(1024*1024))
	output.Verbose("SHA256: " + result.Checksum)

	if len(req.DataFiles) > 0 {
		fmt.Println()
		fmt.Println("📝 Access bundled files in your code:")
		fmt.Println("   import sys, os")
		fmt.Println("   if getattr(sys, 'frozen', False):")
		fmt.Println("       base_path = sys._MEIPASS")
		fmt.Println("   else:")
		fmt.Println("       base_path = os.path.dirname(__file__)")
		fmt.Println("   file_path = os.path.join(base_path, 'your_file.txt')")
	}
}
