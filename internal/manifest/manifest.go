// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads the council manifest: a header-keyed table of
// meeting records, stored as semicolon-delimited UTF-8 text (an optional
// byte-order mark is ignored) or as an .xlsx workbook.
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/council-archive/pkg/types"
)

// Delimiter separates fields in the CSV manifest.
const Delimiter = ';'

const xlsxExt = ".xlsx"

// ErrNotFound is returned by Read when the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// Manifest holds the valid records read from a manifest, in file order.
// Rows missing any of the three fields are not included, only counted in
// Skipped.
type Manifest struct {
	Records []types.Record
	Skipped int
}

// TotalRecords returns the number of valid rows, duplicates included.
func (m Manifest) TotalRecords() int {
	return len(m.Records)
}

// Keys returns the distinct council keys, sorted by year, month, council.
func (m Manifest) Keys() []types.CouncilKey {
	seen := make(map[types.CouncilKey]struct{}, len(m.Records))
	keys := make([]types.CouncilKey, 0, len(m.Records))
	for _, r := range m.Records {
		k := r.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Council < b.Council
	})
	return keys
}

// Read loads the manifest at path. Files ending in .xlsx are read as
// workbooks; everything else is parsed as semicolon CSV. A missing file
// yields an error matching both ErrNotFound and fs.ErrNotExist.
func Read(path string, log *zap.Logger) (Manifest, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return Manifest{}, fmt.Errorf("checking manifest %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), xlsxExt) {
		log.Debug("reading workbook manifest", zap.String("path", path))
		return ReadWorkbook(path, log)
	}

	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	log.Debug("reading csv manifest", zap.String("path", path))
	m, err := Parse(f, log)
	if err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse reads a semicolon-delimited manifest from r. The first row is the
// header. Rows may be shorter or longer than the header; absent cells read
// as empty.
func Parse(r io.Reader, log *zap.Logger) (Manifest, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Manifest{}, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("reading header: %w", err)
	}

	b := newBuilder(header, log)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Manifest{}, fmt.Errorf("reading row: %w", err)
		}
		b.add(row)
	}
	return b.manifest(), nil
}

// builder accumulates records from header-positioned rows.
type builder struct {
	idx  map[Column]int
	log  *zap.Logger
	line int
	m    Manifest
}

func newBuilder(header []string, log *zap.Logger) *builder {
	idx := columnIndex(header)
	for _, c := range Columns {
		if idx[c] < 0 {
			log.Warn("manifest header lacks column", zap.String("column", string(c)))
		}
	}
	return &builder{idx: idx, log: log, line: 1}
}

func (b *builder) add(row []string) {
	b.line++
	rec := types.Record{
		HijriYear:     b.cell(row, ColumnHijriYear),
		HijriMonth:    b.cell(row, ColumnHijriMonth),
		CouncilNumber: b.cell(row, ColumnCouncilNumber),
	}
	if rec.HijriYear == "" || rec.HijriMonth == "" || rec.CouncilNumber == "" {
		b.m.Skipped++
		b.log.Debug("skipping incomplete row", zap.Int("row", b.line))
		return
	}
	b.m.Records = append(b.m.Records, rec)
}

func (b *builder) cell(row []string, c Column) string {
	i := b.idx[c]
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (b *builder) manifest() Manifest {
	b.log.Debug("manifest read",
		zap.Int("records", len(b.m.Records)),
		zap.Int("skipped", b.m.Skipped))
	return b.m
}
