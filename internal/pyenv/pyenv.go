// Package pyenv manages the Python side of a build: locating an
// interpreter, installing packages through pip, and keeping PyInstaller
// available.
//
// pip is always invoked as `<interpreter> -m pip` so the interpreter and
// its package set can never disagree.
package pyenv

import (
	"context"
	"fmt"
	"strings"

	"github.com/glazeapp/glaze/internal/exec"
	"github.com/glazeapp/glaze/internal/output"
)

// Env wraps one Python interpreter and the tools reachable through it.
type Env struct {
	interpreter string
	executor    *exec.Executor
}

// Discover locates a usable Python interpreter. An explicit interpreter
// is probed as-is; otherwise python3 then python are tried on PATH.
func Discover(ctx context.Context, executor *exec.Executor, interpreter string) (*Env, error) {
	candidates := []string{"python3", "python"}
	if interpreter != "" {
		candidates = []string{interpreter}
	}

	for _, candidate := range candidates {
		result, err := executor.Capture(ctx, candidate, "--version")
		if err != nil || !result.Success() {
			continue
		}
		output.Verbose(fmt.Sprintf("Using interpreter: %s", candidate))
		return &Env{interpreter: candidate, executor: executor}, nil
	}

	return nil, fmt.Errorf("no Python interpreter found (tried %s)\n💡 Install Python 3 and try again",
		strings.Join(candidates, ", "))
}

// Interpreter returns the interpreter command this environment wraps.
func (e *Env) Interpreter() string {
	return e.interpreter
}

// Version reports the interpreter's version string. Some interpreters
// print it on stderr, so both streams are checked.
func (e *Env) Version(ctx context.Context) (string, error) {
	return e.probeVersion(ctx, "--version")
}

// PipVersion reports the version string of the interpreter's pip.
func (e *Env) PipVersion(ctx context.Context) (string, error) {
	return e.probeVersion(ctx, "-m", "pip", "--version")
}

// PyInstallerVersion reports the installed PyInstaller version.
func (e *Env) PyInstallerVersion(ctx context.Context) (string, error) {
	return e.probeVersion(ctx, "-m", "PyInstaller", "--version")
}

func (e *Env) probeVersion(ctx context.Context, args ...string) (string, error) {
	result, err := e.executor.Capture(ctx, e.interpreter, args...)
	if err != nil {
		return "", err
	}
	if !result.Success() {
		return "", fmt.Errorf("%s %s exited with status %d",
			e.interpreter, strings.Join(args, " "), result.ExitCode)
	}
	version := strings.TrimSpace(result.Stdout)
	if version == "" {
		version = strings.TrimSpace(result.Stderr)
	}
	return version, nil
}

// InstallPackages installs each package through pip, one subprocess per
// package. A failed install is a warning, not an abort; the bundler may
// still succeed without it.
func (e *Env) InstallPackages(ctx context.Context, packages []string) {
	if len(packages) == 0 {
		return
	}

	output.Info(fmt.Sprintf("Installing required packages: %s", strings.Join(packages, ", ")))
	for _, pkg := range packages {
		output.Verbose(fmt.Sprintf("Running: %s -m pip install %s", e.interpreter, pkg))
		result, err := e.executor.Capture(ctx, e.interpreter, "-m", "pip", "install", pkg)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			output.Warn(fmt.Sprintf("%s - may already be installed or failed", pkg))
			continue
		}
		if !result.Success() {
			output.Warn(fmt.Sprintf("%s - may already be installed or failed", pkg))
			continue
		}
		output.Step(fmt.Sprintf("✓ %s", pkg))
	}
}

// EnsurePyInstaller verifies PyInstaller is importable and installs it
// when missing. Missing tooling is remedied automatically, not fatal.
func (e *Env) EnsurePyInstaller(ctx context.Context) error {
	result, err := e.executor.Capture(ctx, e.interpreter, "-m", "PyInstaller", "--version")
	if err != nil {
		return err
	}
	if result.Success() {
		return nil
	}

	output.Info("PyInstaller not found. Installing...")
	install, err := e.executor.CaptureWithSpinner(ctx, "Installing PyInstaller",
		e.interpreter, "-m", "pip", "install", "pyinstaller")
	if err != nil {
		return err
	}
	if !install.Success() {
		return fmt.Errorf("failed to install PyInstaller:\n%s", strings.TrimSpace(install.Stderr))
	}

	output.Success("PyInstaller installed successfully!")
	return nil
}

// RunPyInstaller invokes PyInstaller with the given arguments, showing a
// spinner while it works. The exit status comes back as data: the caller
// decides what a non-zero build means.
func (e *Env) RunPyInstaller(ctx context.Context, message string, args []string) (*exec.CaptureResult, error) {
	full := append([]string{"-m", "PyInstaller"}, args...)
	output.Verbose(fmt.Sprintf("Running: %s %s", e.interpreter, strings.Join(full, " ")))
	return e.executor.CaptureWithSpinner(ctx, message, e.interpreter, full...)
}
