// Package detect finds the Python modules a piece of source code imports
// and resolves them against known GUI framework tables.
//
// The scan is a best-effort heuristic, not a parser: each line is matched
// against the two common import forms. Aliased imports, imports constructed
// at runtime, and import statements quoted inside strings produce false
// positives or negatives. That is acceptable here: unknown names are
// ignored downstream and PyInstaller does its own full analysis anyway.
package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// The two import forms recognized: `import foo.bar` and `from foo.bar import baz`.
// Leading whitespace is allowed so imports inside if/try blocks still count.
var importPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*import\s+([\w.]+)`),
	regexp.MustCompile(`^\s*from\s+([\w.]+)\s+import`),
}

// pyIgnoreDirs are directory names skipped when scanning a project tree.
var pyIgnoreDirs = []string{
	"__pycache__", "venv", ".venv", "env", "node_modules",
	".git", ".svn", ".hg", ".tox", "build", "dist",
}

// ScanSource returns the sorted set of top-level module names the given
// Python source imports. Only the first dotted segment is kept:
// `import foo.bar` detects foo.
func ScanSource(code string) []string {
	seen := make(map[string]bool)
	for _, line := range strings.Split(code, "\n") {
		for _, pattern := range importPatterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			module, _, _ := strings.Cut(match[1], ".")
			// Relative imports (`from . import x`) have no top-level name.
			if module != "" {
				seen[module] = true
			}
		}
	}
	return sortedKeys(seen)
}

// ScanFile scans a single Python source file for imports.
func ScanFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ScanSource(string(data)), nil
}

// ScanDir walks a directory tree and merges the imports of every .py file
// found. Virtualenvs, caches, VCS metadata, and hidden directories are
// skipped.
func ScanDir(root string) ([]string, error) {
	seen := make(map[string]bool)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			for _, ignore := range pyIgnoreDirs {
				if info.Name() == ignore {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if filepath.Ext(path) != ".py" {
			return nil
		}

		imports, err := ScanFile(path)
		if err != nil {
			return err
		}
		for _, module := range imports {
			seen[module] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sortedKeys(seen), nil
}

// LooksLikeGUI reports whether the source text mentions a known GUI
// toolkit. Drives the default answer for the console-window question.
func LooksLikeGUI(code string) bool {
	lower := strings.ToLower(code)
	for _, hint := range guiHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
