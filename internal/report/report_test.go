// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/council-archive/internal/archive"
)

func TestStatistics(t *testing.T) {
	var out bytes.Buffer
	Statistics(&out, 12, 4)

	want := separator + "\n📊 Archive statistics\n" + separator + "\n" +
		"Total records: 12\nUnique councils: 4\n\n"
	assert.Equal(t, want, out.String())
	assert.Len(t, separator, 50)
}

func TestCounts(t *testing.T) {
	var out bytes.Buffer
	Counts(&out, archive.Comparison{
		Expected: []string{"a.pdf", "b.pdf", "c.pdf"},
		Found:    []string{"a.pdf"},
		Missing:  []string{"b.pdf", "c.pdf"},
	})
	assert.Contains(t, out.String(), "✅ Found: 1\n❌ Missing: 2\n")
}

func TestMissingList(t *testing.T) {
	var out bytes.Buffer
	MissingList(&out, nil)
	assert.Empty(t, out.String(), "empty list prints nothing")

	MissingList(&out, []string{"4501-01.pdf", "4512-01.pdf"})
	assert.True(t, strings.HasSuffix(out.String(), "  4501-01.pdf\n  4512-01.pdf\n\n"))
}

func TestListing(t *testing.T) {
	snap := archive.Snapshot{"4503-07.pdf": {}}
	c := archive.Compare([]string{"4504-02.pdf", "4503-07.pdf"}, snap)

	var out bytes.Buffer
	Listing(&out, c, snap)
	assert.True(t, strings.HasSuffix(out.String(), "  ✅ 4503-07.pdf\n  ❌ 4504-02.pdf\n"), out.String())
	assert.True(t, strings.HasPrefix(out.String(), "\n"+separator))
}

func TestManifestNotFound(t *testing.T) {
	var out bytes.Buffer
	ManifestNotFound(&out, "data/councils.csv")
	assert.Equal(t, "❌ Manifest file not found: data/councils.csv\n", out.String())
}

func TestMissingListBody(t *testing.T) {
	got := MissingListBody("pdfs/", []string{"4504-02.pdf", "4512-01.pdf"})
	want := "# Missing PDF files\n# Place them in the pdfs/ directory\n\n4504-02.pdf\n4512-01.pdf\n"
	assert.Equal(t, want, got)
}

func TestWriteMissingList_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing_pdfs.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("old line\n", 50)), 0o644))

	require.NoError(t, WriteMissingList(path, "pdfs", []string{"4504-02.pdf"}))

	names, err := ReadMissingList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"4504-02.pdf"}, names)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old line")
}

func TestWriteExport_Formats(t *testing.T) {
	e := Export{
		TotalRecords:   3,
		UniqueCouncils: 2,
		Files: archive.Comparison{
			Expected: []string{"4503-07.pdf", "4504-02.pdf"},
			Found:    []string{"4503-07.pdf"},
			Missing:  []string{"4504-02.pdf"},
		},
	}
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "report.yaml")
	require.NoError(t, WriteExport(yamlPath, e))
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "total_records: 3")
	assert.Contains(t, string(data), "- 4504-02.pdf")

	jsonPath := filepath.Join(dir, "report.JSON")
	require.NoError(t, WriteExport(jsonPath, e))
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"unique_councils": 2`)

	got, err := ReadExport(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, e.Files, got.Files)
}
