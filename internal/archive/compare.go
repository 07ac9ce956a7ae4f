// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"sort"

	"github.com/pdiddy/council-archive/pkg/types"
)

// Comparison partitions the expected filenames by presence in a snapshot.
// All slices are sorted ascending by byte order; Found and Missing are
// disjoint and together equal Expected.
type Comparison struct {
	Expected []string `json:"expected" yaml:"expected"`
	Found    []string `json:"found" yaml:"found"`
	Missing  []string `json:"missing" yaml:"missing"`
}

// HasMissing reports whether any expected file is absent.
func (c Comparison) HasMissing() bool {
	return len(c.Missing) > 0
}

// ExpectedFiles derives the set of filenames implied by keys. Distinct keys
// that derive the same filename merge into one entry.
func ExpectedFiles(keys []types.CouncilKey) []string {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[FilenameFor(k)] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compare splits expected into the names present in snap and those absent.
// expected need not be sorted or unique.
func Compare(expected []string, snap Snapshot) Comparison {
	uniq := make(map[string]struct{}, len(expected))
	for _, name := range expected {
		uniq[name] = struct{}{}
	}

	c := Comparison{
		Expected: make([]string, 0, len(uniq)),
		Found:    []string{},
		Missing:  []string{},
	}
	for name := range uniq {
		c.Expected = append(c.Expected, name)
	}
	sort.Strings(c.Expected)

	for _, name := range c.Expected {
		if snap.Has(name) {
			c.Found = append(c.Found, name)
		} else {
			c.Missing = append(c.Missing, name)
		}
	}
	return c
}
