package buildspec

import "strings"

// ParseFileList parses the wizard's comma-separated resource list into
// source/destination pairs. Each item is `source`, `source:dest`, or
// `source->dest`; a bare source lands in the bundle root.
//
//	ParseFileList("logo.png, data.txt:data, images->assets")
func ParseFileList(input string) []DataFile {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var files []DataFile
	for _, item := range strings.Split(input, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		var source, dest string
		switch {
		case strings.Contains(item, ":"):
			source, dest, _ = strings.Cut(item, ":")
		case strings.Contains(item, "->"):
			source, dest, _ = strings.Cut(item, "->")
		default:
			files = append(files, DataFile{Source: item, Dest: "."})
			continue
		}

		files = append(files, DataFile{
			Source: strings.TrimSpace(source),
			Dest:   strings.TrimSpace(dest),
		})
	}

	return files
}
