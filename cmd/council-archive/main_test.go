// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func paths(root string) []string {
	return []string{
		"--manifest", filepath.Join(root, "data", "councils.csv"),
		"--pdfs-dir", filepath.Join(root, "pdfs"),
		"--missing-list", filepath.Join(root, "missing_pdfs.txt"),
		"--export", "",
	}
}

func TestRootCmd_ManifestMissingExitsCleanly(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, paths(root)...)
	require.NoError(t, err)
	assert.Equal(t, "❌ Manifest file not found: "+filepath.Join(root, "data", "councils.csv")+"\n", out)
	assert.NoFileExists(t, filepath.Join(root, "missing_pdfs.txt"))
}

func TestRootCmd_Check(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pdfs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "councils.csv"),
		[]byte("السنة الهجرية;الشهر الهجري;رقم المجلس\n1445;3;7\n1445;4;2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pdfs", "4503-07.pdf"), []byte("%PDF"), 0o644))

	exportPath := filepath.Join(root, "report.json")
	args := append(paths(root), "--export", exportPath)

	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "  ✅ 4503-07.pdf\n")
	assert.Contains(t, out, "  ❌ 4504-02.pdf\n")
	assert.FileExists(t, filepath.Join(root, "missing_pdfs.txt"))
	assert.FileExists(t, exportPath)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := execute(t, append(paths(t.TempDir()), "extra")...)
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "council-archive dev\n", out)
}
