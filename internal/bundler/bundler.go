// Package bundler turns a validated build request into a standalone
// executable by driving PyInstaller inside a scoped working directory.
package bundler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/glazeapp/glaze/internal/buildspec"
	"github.com/glazeapp/glaze/internal/detect"
	"github.com/glazeapp/glaze/internal/output"
	"github.com/glazeapp/glaze/internal/pyenv"
)

// Result reports one build attempt. A PyInstaller failure is a Result with
// OK false, never a Go error: the exit status is data for the caller's
// report, not a fault inside the invoker.
type Result struct {
	OK       bool
	DryRun   bool
	ExePath  string
	Size     int64
	Checksum string
	Stderr   string
	Hint     string
}

// Builder drives PyInstaller through a discovered Python environment.
type Builder struct {
	env    *pyenv.Env
	dryRun bool
}

// New creates a Builder for the given environment.
func New(env *pyenv.Env) *Builder {
	return &Builder{env: env}
}

// SetDryRun makes Build print the PyInstaller invocation instead of
// running it.
func (b *Builder) SetDryRun(dryRun bool) {
	b.dryRun = dryRun
}

// Build runs one PyInstaller invocation for the request. Intermediate
// artifacts live in a fresh temp dir that is removed on every exit path;
// only the executable and its checksum sidecar land in the output dir.
func (b *Builder) Build(ctx context.Context, req *buildspec.Request, res *detect.Resolution) (*Result, error) {
	if res == nil {
		res = &detect.Resolution{}
	}

	workDir, err := os.MkdirTemp("", "glaze-build-*")
	if err != nil {
		return nil, fmt.Errorf("creating work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	scriptPath, err := stageScript(req, workDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	args := commandArgs(req, res, workDir, scriptPath)

	if b.dryRun {
		output.Info("Dry run. PyInstaller would be invoked as:")
		output.Step(b.env.Interpreter() + " -m PyInstaller " + strings.Join(args, " "))
		return &Result{OK: true, DryRun: true}, nil
	}

	run, err := b.env.RunPyInstaller(ctx, fmt.Sprintf("Building executable: %s (may take 1-3 minutes)", req.AppName), args)
	if err != nil {
		return nil, err
	}
	if !run.Success() {
		result := &Result{Stderr: run.Stderr}
		if strings.Contains(run.Stderr, "ModuleNotFoundError") {
			result.Hint = "💡 Tip: Try installing missing modules or add them to hidden imports"
		}
		return result, nil
	}

	exePath := filepath.Join(req.OutputDir, executableName(req.AppName))
	info, err := os.Stat(exePath)
	if err != nil {
		return nil, fmt.Errorf("build reported success but %s is missing: %w", exePath, err)
	}

	sum, err := writeChecksum(exePath)
	if err != nil {
		return nil, err
	}

	return &Result{OK: true, ExePath: exePath, Size: info.Size(), Checksum: sum}, nil
}

// stageScript returns the path PyInstaller should compile. Inline code is
// written into the work dir under the app's name so the bundled entry
// module carries it; an existing script file is used in place.
func stageScript(req *buildspec.Request, workDir string) (string, error) {
	if req.Code == "" {
		if _, err := os.Stat(req.Script); err != nil {
			return "", fmt.Errorf("script not found: %s", req.Script)
		}
		return req.Script, nil
	}

	scriptPath := filepath.Join(workDir, req.AppName+".py")
	if err := os.WriteFile(scriptPath, []byte(req.Code), 0o644); err != nil {
		return "", fmt.Errorf("writing script: %w", err)
	}
	return scriptPath, nil
}

// commandArgs assembles the PyInstaller argument list. The script path
// goes last; everything before it is flags.
func commandArgs(req *buildspec.Request, res *detect.Resolution, workDir, scriptPath string) []string {
	args := []string{
		"--onefile",
		"--name", req.AppName,
		"--distpath", req.OutputDir,
		"--workpath", filepath.Join(workDir, "build"),
		"--specpath", workDir,
		"--clean",
	}

	if req.IconPath != "" {
		if _, err := os.Stat(req.IconPath); err == nil {
			args = append(args, "--icon", req.IconPath)
		} else {
			output.Warn("Icon file not found: " + req.IconPath)
		}
	}

	if !req.Console {
		args = append(args, "--windowed", "--noconsole")
	}

	if len(res.HiddenImports) > 0 {
		output.Info(fmt.Sprintf("Including hidden imports (%d modules)", len(res.HiddenImports)))
	}
	for _, module := range res.HiddenImports {
		args = append(args, "--hidden-import", module)
	}

	if len(req.DataFiles) > 0 {
		output.Info(fmt.Sprintf("Bundling additional files (%d items)", len(req.DataFiles)))
	}
	for _, file := range req.DataFiles {
		if _, err := os.Stat(file.Source); err != nil {
			output.Warn("File not found: " + file.Source)
			continue
		}
		args = append(args, "--add-data", file.Source+string(os.PathListSeparator)+file.Dest)
		output.Step(fmt.Sprintf("✓ %s -> %s", file.Source, file.Dest))
	}

	for _, lib := range res.CollectAll {
		args = append(args, "--collect-all", lib)
	}

	return append(args, scriptPath)
}

// executableName appends the suffix PyInstaller gives its one-file output
// on this platform.
func executableName(appName string) string {
	if runtime.GOOS == "windows" {
		return appName + ".exe"
	}
	return appName
}
