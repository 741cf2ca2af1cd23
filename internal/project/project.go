// Package project inspects an existing Python project directory so glaze
// can seed a build manifest from what is already there.
package project

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Info is what glaze can learn from a Python project directory.
type Info struct {
	Name     string   // project name, or the directory name as fallback
	Script   string   // entry script relative to the directory, when unambiguous
	Packages []string // declared dependencies, version constraints stripped
}

// pyProject is the slice of pyproject.toml glaze cares about (PEP 621).
type pyProject struct {
	Project struct {
		Name         string   `toml:"name"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// Detect inspects dir and assembles seeding info. pyproject.toml wins for
// the name and dependency list, requirements.txt is the fallback, and the
// directory name covers a missing project name. The entry script is only
// filled when the choice is obvious.
func Detect(dir string) (*Info, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	info := &Info{Name: filepath.Base(abs)}

	if err := readPyProject(dir, info); err != nil {
		return nil, err
	}
	if len(info.Packages) == 0 {
		packages, err := readRequirements(dir)
		if err != nil {
			return nil, err
		}
		info.Packages = packages
	}

	script, err := findEntryScript(dir)
	if err != nil {
		return nil, err
	}
	info.Script = script

	return info, nil
}

func readPyProject(dir string, info *Info) error {
	path := filepath.Join(dir, "pyproject.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pp pyProject
	if err := toml.Unmarshal(data, &pp); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if pp.Project.Name != "" {
		info.Name = pp.Project.Name
	}
	for _, dep := range pp.Project.Dependencies {
		if name := packageName(dep); name != "" {
			info.Packages = append(info.Packages, name)
		}
	}
	return nil
}

func readRequirements(dir string) ([]string, error) {
	path := filepath.Join(dir, "requirements.txt")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var packages []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines, comments, and pip options like -r or -e
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if name := packageName(line); name != "" {
			packages = append(packages, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return packages, nil
}

// packageName strips a PEP 508 dependency line down to its bare package
// name: version specifiers, extras, environment markers, and trailing
// comments all go.
func packageName(dep string) string {
	name, _, _ := strings.Cut(dep, "#")
	name, _, _ = strings.Cut(name, ";")
	name, _, _ = strings.Cut(name, "[")
	for _, sep := range []string{"==", ">=", "<=", "~=", "!=", ">", "<"} {
		if idx := strings.Index(name, sep); idx != -1 {
			name = name[:idx]
			break
		}
	}
	return strings.TrimSpace(name)
}

// findEntryScript picks the project's entry script: a single root-level
// .py file wins outright, otherwise a conventional name. Packaging
// helpers like setup.py never count.
func findEntryScript(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}

	var scripts []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".py" {
			continue
		}
		if name == "setup.py" || name == "conftest.py" || strings.HasPrefix(name, ".") {
			continue
		}
		scripts = append(scripts, name)
	}

	if len(scripts) == 1 {
		return scripts[0], nil
	}
	for _, conventional := range []string{"main.py", "app.py", "__main__.py"} {
		for _, script := range scripts {
			if script == conventional {
				return script, nil
			}
		}
	}
	return "", nil
}
