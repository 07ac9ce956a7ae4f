// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Snapshot is the set of entry names present in the archive directory at
// the time it was read.
type Snapshot map[string]struct{}

// Has reports whether name was present.
func (s Snapshot) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// ReadSnapshot lists the immediate entries of dir. Subdirectories count as
// entries; nothing is recursed into. A directory that does not exist yields
// an empty snapshot, not an error.
func ReadSnapshot(dir string) (Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("reading archive directory %s: %w", dir, err)
	}

	snap := make(Snapshot, len(entries))
	for _, e := range entries {
		snap[e.Name()] = struct{}{}
	}
	return snap, nil
}
