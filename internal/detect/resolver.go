package detect

import (
	"slices"
	"strings"
)

// Resolution is the outcome of dependency resolution: the packages to
// install before building and the modules the bundler must be told about
// explicitly.
type Resolution struct {
	Packages      []string
	HiddenImports []string

	// CollectAll lists libraries that need full collection (code,
	// binaries, and data files) rather than module-level inclusion.
	CollectAll []string
}

// Resolve maps detected imports to installable packages and hidden-import
// lists, merging any manual additions. Manual entries come first; both
// result lists are de-duplicated keeping first-seen order. Imports with no
// table entry contribute only themselves as hidden imports, on the
// assumption they are stdlib modules or part of the user's own code.
//
// Pass nil imports for manual mode: only the manual lists survive.
func Resolve(imports []string, manualPackages, manualHidden []string) Resolution {
	packages := append([]string(nil), manualPackages...)

	for _, extra := range extraPackages {
		if slices.Contains(imports, extra.module) && !containsFold(packages, extra.pkg) {
			packages = append(packages, extra.pkg)
		}
	}

	for _, module := range imports {
		if installNames, ok := guiFrameworks[module]; ok {
			packages = append(packages, installNames...)
		}
	}

	hidden := append([]string(nil), manualHidden...)

	for _, module := range imports {
		key := module
		if alias, ok := importAliases[module]; ok {
			key = alias
		}
		hidden = append(hidden, hiddenImports[key]...)
	}

	// The detected names themselves ride along so the bundler keeps
	// modules its own analysis might miss.
	hidden = append(hidden, imports...)

	resolution := Resolution{
		Packages:      dedupe(packages),
		HiddenImports: dedupe(hidden),
	}

	if needsFullPIL(imports, resolution.HiddenImports) {
		resolution.CollectAll = []string{"PIL"}
	}

	return resolution
}

// needsFullPIL reports whether pillow's binary plugins must be collected
// wholesale. Image codecs load dynamically, so module-level hidden imports
// are not enough.
func needsFullPIL(imports, hidden []string) bool {
	if slices.Contains(imports, "PIL") || slices.Contains(imports, "Image") {
		return true
	}
	for _, module := range hidden {
		if module == "PIL" || strings.HasPrefix(module, "PIL.") {
			return true
		}
	}
	return false
}

// dedupe removes duplicates keeping first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func containsFold(items []string, target string) bool {
	for _, item := range items {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
