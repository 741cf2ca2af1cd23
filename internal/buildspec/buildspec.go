// Package buildspec defines the build request glaze assembles from the
// wizard, command flags, or a glaze.yml manifest, and hands to the bundler.
package buildspec

import "fmt"

// DataFile is one resource bundled into the executable.
type DataFile struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// Request aggregates everything one build needs. It is constructed once
// per run, consumed once by the bundler, then discarded.
type Request struct {
	AppName   string
	Code      string // inline Python source
	Script    string // or a path to an existing script file
	OutputDir string
	IconPath  string
	Console   bool
	DataFiles []DataFile

	// AutoDetect scans the source for imports; when false only the
	// manual lists below are used.
	AutoDetect    bool
	HiddenImports []string
	Packages      []string
}

// Validate checks the request is buildable before any subprocess runs.
func (r *Request) Validate() error {
	if r.AppName == "" {
		return fmt.Errorf("application name is required")
	}
	if r.Code == "" && r.Script == "" {
		return fmt.Errorf("no code provided: set inline code or a script path")
	}
	if r.Code != "" && r.Script != "" {
		return fmt.Errorf("inline code and a script path are mutually exclusive")
	}
	if r.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
