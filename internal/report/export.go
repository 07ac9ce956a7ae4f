// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/council-archive/internal/archive"
	"github.com/pdiddy/council-archive/pkg/types"
)

// Export is the structured form of one check run.
type Export struct {
	GeneratedAt    time.Time          `json:"generated_at" yaml:"generated_at"`
	Config         types.CheckConfig  `json:"config" yaml:"config"`
	TotalRecords   int                `json:"total_records" yaml:"total_records"`
	UniqueCouncils int                `json:"unique_councils" yaml:"unique_councils"`
	Files          archive.Comparison `json:"files" yaml:"files"`
}

// WriteExport writes e to path as JSON when the path ends in .json and as
// YAML otherwise.
func WriteExport(path string, e Export) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(e, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	} else {
		data, err = yaml.Marshal(&e)
	}
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export %s: %w", path, err)
	}
	return nil
}

// ReadExport loads an export previously written by WriteExport.
func ReadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	var e Export
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &e)
	} else {
		err = yaml.Unmarshal(data, &e)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}
	return &e, nil
}
