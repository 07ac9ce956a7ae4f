// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check runs one archive check: read the manifest, derive the
// expected filenames, compare them with the archive directory, print the
// report, and persist the missing list.
package check

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/council-archive/internal/archive"
	"github.com/pdiddy/council-archive/internal/manifest"
	"github.com/pdiddy/council-archive/internal/report"
	"github.com/pdiddy/council-archive/pkg/types"
)

// Result holds the outcome of a completed run.
type Result struct {
	TotalRecords   int
	UniqueCouncils int
	Comparison     archive.Comparison

	// MissingListWritten reports whether the missing list was written.
	MissingListWritten bool
}

// now is replaced in tests.
var now = time.Now

// Run performs a check with cfg and writes the report to w. A missing
// manifest is returned as an error matching manifest.ErrNotFound after the
// diagnostic has been printed; nothing is written to disk in that case.
func Run(cfg types.CheckConfig, w io.Writer, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.WithDefaults()

	m, err := manifest.Read(cfg.ManifestPath, log)
	if err != nil {
		if IsManifestMissing(err) {
			report.ManifestNotFound(w, cfg.ManifestPath)
		}
		return Result{}, err
	}

	keys := m.Keys()
	res := Result{
		TotalRecords:   m.TotalRecords(),
		UniqueCouncils: len(keys),
	}
	report.Statistics(w, res.TotalRecords, res.UniqueCouncils)

	snap, err := archive.ReadSnapshot(cfg.PDFsDir)
	if err != nil {
		return res, err
	}
	log.Debug("archive directory read",
		zap.String("dir", cfg.PDFsDir),
		zap.Int("entries", len(snap)))

	res.Comparison = archive.Compare(archive.ExpectedFiles(keys), snap)
	report.Counts(w, res.Comparison)

	if res.Comparison.HasMissing() {
		report.MissingList(w, res.Comparison.Missing)
		if err := report.WriteMissingList(cfg.MissingListPath, cfg.PDFsDir, res.Comparison.Missing); err != nil {
			return res, err
		}
		res.MissingListWritten = true
		report.Saved(w, cfg.MissingListPath)
	}

	report.Listing(w, res.Comparison, snap)

	if cfg.ExportPath != "" {
		e := report.Export{
			GeneratedAt:    now().UTC(),
			Config:         cfg,
			TotalRecords:   res.TotalRecords,
			UniqueCouncils: res.UniqueCouncils,
			Files:          res.Comparison,
		}
		if err := report.WriteExport(cfg.ExportPath, e); err != nil {
			return res, fmt.Errorf("exporting result: %w", err)
		}
		log.Info("exported result", zap.String("path", cfg.ExportPath))
	}

	return res, nil
}

// IsManifestMissing reports whether err is the absent-manifest condition.
func IsManifestMissing(err error) bool {
	return errors.Is(err, manifest.ErrNotFound)
}
