package svn

import (
	"path/filepath"
	"strings"
)

// ParseExternals turns svn:externals property lines of the form
// "<remote> <local>" into local directories joined onto dir. Lines that do
// not split into exactly two fields (comments, -r pinned definitions, blank
// lines) are dropped.
func ParseExternals(dir string, lines []string) []string {
	externals := []string{}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		externals = append(externals, filepath.Join(dir, fields[1]))
	}
	return externals
}
