// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"strings"
)

// MissingListBody renders the missing-list file: two comment lines, a blank
// line, then one filename per line.
func MissingListBody(pdfsDir string, missing []string) string {
	var b strings.Builder
	b.WriteString("# Missing PDF files\n")
	fmt.Fprintf(&b, "# Place them in the %s/ directory\n\n", strings.TrimRight(pdfsDir, "/"))
	for _, name := range missing {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteMissingList writes the missing list to path, truncating any previous
// contents.
func WriteMissingList(path, pdfsDir string, missing []string) error {
	if err := os.WriteFile(path, []byte(MissingListBody(pdfsDir, missing)), 0o644); err != nil {
		return fmt.Errorf("writing missing list %s: %w", path, err)
	}
	return nil
}

// ReadMissingList returns the filenames in a missing-list file, skipping
// comment and blank lines.
func ReadMissingList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading missing list %s: %w", path, err)
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}
