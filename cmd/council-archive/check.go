// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/council-archive/internal/check"
	"github.com/pdiddy/council-archive/pkg/types"
)

// envKeyReplacer maps keys like "pdfs-dir" to COUNCIL_ARCHIVE_PDFS_DIR.
var envKeyReplacer = strings.NewReplacer("-", "_")

const (
	keyManifest    = "manifest"
	keyPDFsDir     = "pdfs-dir"
	keyMissingList = "missing-list"
	keyExport      = "export"
)

func registerCheckFlags(cmd *cobra.Command) {
	cmd.Flags().String(keyManifest, types.DefaultManifestPath, "council manifest (semicolon CSV or .xlsx)")
	cmd.Flags().String(keyPDFsDir, types.DefaultPDFsDir, "directory holding archived council PDFs")
	cmd.Flags().String(keyMissingList, types.DefaultMissingListPath, "file that receives the missing filenames")
	cmd.Flags().String(keyExport, "", "also write the full result to this file (.json for JSON, YAML otherwise)")

	for _, key := range []string{keyManifest, keyPDFsDir, keyMissingList, keyExport} {
		_ = viper.BindPFlag(key, cmd.Flags().Lookup(key))
	}
}

func checkConfig() types.CheckConfig {
	return types.CheckConfig{
		ManifestPath:    viper.GetString(keyManifest),
		PDFsDir:         viper.GetString(keyPDFsDir),
		MissingListPath: viper.GetString(keyMissingList),
		ExportPath:      viper.GetString(keyExport),
	}.WithDefaults()
}

// runCheck runs the archive check. An absent manifest has already been
// reported on stdout by the time Run returns, and is not a failure exit.
func runCheck(cmd *cobra.Command, args []string) error {
	_, err := check.Run(checkConfig(), cmd.OutOrStdout(), logger)
	if check.IsManifestMissing(err) {
		return nil
	}
	return err
}
