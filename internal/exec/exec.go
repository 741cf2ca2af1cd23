// Package exec runs external commands for glaze.
//
// Both collaborators glaze shells out to (pip and PyInstaller) report
// their outcome as an exit status with diagnostics on stderr, so the
// package offers two modes: Run streams output through the executor's
// writers, Capture buffers it and hands back the exit code as data.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CommandFunc constructs the exec.Cmd an Executor runs. Tests swap it in
// to fake external tools.
type CommandFunc func(name string, args ...string) *exec.Cmd

// Executor runs external commands.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	env    []string
	dir    string

	commandFunc CommandFunc
}

// Options configures command execution.
type Options struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Env         []string    // Additional environment variables
	Dir         string      // Working directory
	CommandFunc CommandFunc // Command constructor, for mocking in tests
}

// NewExecutor creates an executor with sensible defaults.
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.CommandFunc == nil {
		opts.CommandFunc = exec.Command
	}

	return &Executor{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		env:         opts.Env,
		dir:         opts.Dir,
		commandFunc: opts.CommandFunc,
	}
}

// Run executes a command, streaming output through the executor's writers.
// A non-zero exit is returned as an error; use Capture when the exit code
// is an expected outcome rather than a failure.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.commandFunc(name, args...)

	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}

	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return enhanceError(err, name)
		}
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		if err != nil {
			if isCommandNotFound(err) {
				return enhanceError(err, name)
			}
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	}
}

// CaptureResult holds the outcome of a captured command run.
type CaptureResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited zero.
func (r *CaptureResult) Success() bool {
	return r.ExitCode == 0
}

// Capture executes a command with buffered output. The command exiting
// non-zero is not an error: the result carries the exit code and both
// streams so callers can decide what a failure means. An error is only
// returned when the command could not be started or the context ended.
func (e *Executor) Capture(ctx context.Context, name string, args ...string) (*CaptureResult, error) {
	cmd := e.commandFunc(name, args...)

	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return nil, enhanceError(err, name)
		}
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return nil, fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		result := &CaptureResult{
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				result.ExitCode = exitErr.ExitCode()
				return result, nil
			}
			return nil, fmt.Errorf("%s failed: %w", name, err)
		}
		return result, nil
	}
}

// CaptureWithSpinner is Capture with a progress spinner on the executor's
// stderr while the command runs. Used for the long externals (PyInstaller
// builds run for minutes).
func (e *Executor) CaptureWithSpinner(ctx context.Context, message string, name string, args ...string) (*CaptureResult, error) {
	type outcome struct {
		result *CaptureResult
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		result, err := e.Capture(ctx, name, args...)
		done <- outcome{result: result, err: err}
	}()

	m := newSpinnerModel(message)
	p := tea.NewProgram(m, tea.WithOutput(e.stderr))

	go func() {
		if _, err := p.Run(); err != nil {
			// Silently ignore spinner errors
			_ = err
		}
	}()

	out := <-done

	if out.err != nil {
		p.Send(spinnerDoneMsg{err: out.err})
	} else if !out.result.Success() {
		p.Send(spinnerDoneMsg{err: fmt.Errorf("exit status %d", out.result.ExitCode)})
	} else {
		p.Send(spinnerDoneMsg{})
	}

	// Give spinner time to render final state
	time.Sleep(50 * time.Millisecond)
	p.Quit()

	return out.result, out.err
}

// spinnerModel is the bubbletea model for the spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("✗ %s\n", m.message)
		}
		return fmt.Sprintf("✓ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

// isCommandNotFound checks if an error indicates a command was not found
func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}

// enhanceError adds a helpful message for missing commands
func enhanceError(err error, cmd string) error {
	return fmt.Errorf("%w\n💡 Command '%s' not found. Please install it and try again", err, cmd)
}
