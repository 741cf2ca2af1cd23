package buildspec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the manifest file glaze looks for in the working directory.
const ManifestName = "glaze.yml"

// manifest is the on-disk shape of glaze.yml. Booleans are pointers so an
// omitted key can fall back to its default instead of false.
type manifest struct {
	App struct {
		Name    string `yaml:"name"`
		Icon    string `yaml:"icon,omitempty"`
		Console *bool  `yaml:"console,omitempty"`
	} `yaml:"app"`
	Build struct {
		Script    string     `yaml:"script,omitempty"`
		Code      string     `yaml:"code,omitempty"`
		OutputDir string     `yaml:"output_dir,omitempty"`
		DataFiles []DataFile `yaml:"data_files,omitempty"`
	} `yaml:"build"`
	Dependencies struct {
		AutoDetect    *bool    `yaml:"auto_detect,omitempty"`
		HiddenImports []string `yaml:"hidden_imports,omitempty"`
		Packages      []string `yaml:"packages,omitempty"`
	} `yaml:"dependencies"`
}

// HasManifest checks if a directory contains a glaze.yml.
func HasManifest(dir string) bool {
	_, err := os.Stat(manifestPath(dir))
	return err == nil
}

// LoadManifest reads glaze.yml from the given directory into a Request.
// Omitted keys take the wizard's defaults: output to the current
// directory, console shown, dependencies auto-detected.
func LoadManifest(dir string) (*Request, error) {
	path := manifestPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	req := &Request{
		AppName:       m.App.Name,
		Code:          m.Build.Code,
		Script:        m.Build.Script,
		OutputDir:     m.Build.OutputDir,
		IconPath:      m.App.Icon,
		Console:       true,
		AutoDetect:    true,
		DataFiles:     m.Build.DataFiles,
		HiddenImports: m.Dependencies.HiddenImports,
		Packages:      m.Dependencies.Packages,
	}
	if m.App.Console != nil {
		req.Console = *m.App.Console
	}
	if m.Dependencies.AutoDetect != nil {
		req.AutoDetect = *m.Dependencies.AutoDetect
	}
	if req.OutputDir == "" {
		req.OutputDir = "."
	}

	return req, nil
}

// SaveManifest writes the request as glaze.yml into the given directory.
func SaveManifest(req *Request, dir string) error {
	var m manifest
	m.App.Name = req.AppName
	m.App.Icon = req.IconPath
	if !req.Console {
		console := false
		m.App.Console = &console
	}
	m.Build.Script = req.Script
	m.Build.Code = req.Code
	m.Build.OutputDir = req.OutputDir
	m.Build.DataFiles = req.DataFiles
	if !req.AutoDetect {
		autoDetect := false
		m.Dependencies.AutoDetect = &autoDetect
	}
	m.Dependencies.HiddenImports = req.HiddenImports
	m.Dependencies.Packages = req.Packages

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	path := manifestPath(dir)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func manifestPath(dir string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, ManifestName)
}
