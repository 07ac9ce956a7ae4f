// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReadWorkbook loads a manifest from the first sheet of an .xlsx workbook.
// Row 1 is the header; the same columns and validity rule as the CSV form
// apply.
func ReadWorkbook(path string, log *zap.Logger) (Manifest, error) {
	if log == nil {
		log = zap.NewNop()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Manifest{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Manifest{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Manifest{}, nil
	}

	b := newBuilder(rows[0], log)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			b.line++
			continue
		}
		b.add(row)
	}
	return b.manifest(), nil
}
