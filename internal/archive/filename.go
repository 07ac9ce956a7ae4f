// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive derives expected PDF filenames from council keys and
// reconciles them against the files present in the archive directory.
package archive

import (
	"strings"

	"github.com/pdiddy/council-archive/pkg/types"
)

const (
	fieldWidth = 2
	pdfExt     = ".pdf"
)

// DeriveFilename returns the archive filename for a council: the last two
// characters of the year, the month, a hyphen, and the council number, each
// zero-filled to two characters. DeriveFilename("1445", "3", "7") is
// "4503-07.pdf".
//
// The year is cut textually, not converted; the result is defined for any
// input strings.
func DeriveFilename(year, month, council string) string {
	var b strings.Builder
	b.WriteString(zeroFill(lastRunes(year, fieldWidth), fieldWidth))
	b.WriteString(zeroFill(month, fieldWidth))
	b.WriteByte('-')
	b.WriteString(zeroFill(council, fieldWidth))
	b.WriteString(pdfExt)
	return b.String()
}

// FilenameFor is DeriveFilename applied to a council key.
func FilenameFor(k types.CouncilKey) string {
	return DeriveFilename(k.Year, k.Month, k.Council)
}

// lastRunes returns the trailing n characters of s, or s itself when shorter.
func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// zeroFill left-pads s with zeros to width characters. A leading sign stays
// in front of the padding. Strings already at width are returned unchanged.
func zeroFill(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	pad := strings.Repeat("0", width-len(r))
	if len(r) > 0 && (r[0] == '+' || r[0] == '-') {
		return string(r[0]) + pad + string(r[1:])
	}
	return pad + s
}
