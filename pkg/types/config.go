// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	DefaultManifestPath    = "data/councils.csv"
	DefaultPDFsDir         = "pdfs"
	DefaultMissingListPath = "missing_pdfs.txt"
)

// CheckConfig holds the paths used by one archive check run.
type CheckConfig struct {
	// ManifestPath is the council manifest (semicolon CSV, or .xlsx).
	ManifestPath string `json:"manifest" yaml:"manifest"`

	// PDFsDir is the flat directory holding archived council PDFs.
	PDFsDir string `json:"pdfs_dir" yaml:"pdfs_dir"`

	// MissingListPath receives the sorted missing filenames. It is rewritten
	// on every run that finds missing files and left alone otherwise.
	MissingListPath string `json:"missing_list" yaml:"missing_list"`

	// ExportPath, when set, receives the full run result as YAML, or JSON
	// when the path ends in ".json".
	ExportPath string `json:"export,omitempty" yaml:"export,omitempty"`
}

// WithDefaults fills empty paths with the conventional locations.
func (c CheckConfig) WithDefaults() CheckConfig {
	if c.ManifestPath == "" {
		c.ManifestPath = DefaultManifestPath
	}
	if c.PDFsDir == "" {
		c.PDFsDir = DefaultPDFsDir
	}
	if c.MissingListPath == "" {
		c.MissingListPath = DefaultMissingListPath
	}
	return c
}
