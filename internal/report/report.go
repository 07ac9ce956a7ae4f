// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders archive check results for the operator and writes
// the missing-file list.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/council-archive/internal/archive"
)

const (
	separatorWidth = 50

	markFound   = "✅"
	markMissing = "❌"
)

var separator = strings.Repeat("=", separatorWidth)

func section(w io.Writer, title string) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, separator)
}

// ManifestNotFound prints the diagnostic for an absent manifest.
func ManifestNotFound(w io.Writer, path string) {
	fmt.Fprintf(w, "%s Manifest file not found: %s\n", markMissing, path)
}

// Statistics prints the record and council counts.
func Statistics(w io.Writer, totalRecords, uniqueCouncils int) {
	section(w, "📊 Archive statistics")
	fmt.Fprintf(w, "Total records: %d\n", totalRecords)
	fmt.Fprintf(w, "Unique councils: %d\n", uniqueCouncils)
	fmt.Fprintln(w)
}

// Counts prints how many expected files were found and missing.
func Counts(w io.Writer, c archive.Comparison) {
	section(w, "📄 Expected PDF files")
	fmt.Fprintf(w, "%s Found: %d\n", markFound, len(c.Found))
	fmt.Fprintf(w, "%s Missing: %d\n", markMissing, len(c.Missing))
	fmt.Fprintln(w)
}

// MissingList prints the sorted missing filenames. It prints nothing when
// missing is empty.
func MissingList(w io.Writer, missing []string) {
	if len(missing) == 0 {
		return
	}
	section(w, "📋 Missing files")
	for _, name := range missing {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
}

// Saved prints where the missing list was written.
func Saved(w io.Writer, path string) {
	fmt.Fprintf(w, "💾 Saved list to: %s\n", path)
}

// Listing prints every expected filename with its found or missing mark.
func Listing(w io.Writer, c archive.Comparison, snap archive.Snapshot) {
	fmt.Fprintln(w)
	section(w, "📁 All expected PDF files")
	for _, name := range c.Expected {
		mark := markMissing
		if snap.Has(name) {
			mark = markFound
		}
		fmt.Fprintf(w, "  %s %s\n", mark, name)
	}
}
