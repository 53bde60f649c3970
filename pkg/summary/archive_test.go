package summary

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveGerbers(t *testing.T) {
	outputDir := t.TempDir()
	gerbersDir := filepath.Join(outputDir, "Gerbers")
	require.NoError(t, os.MkdirAll(gerbersDir, 0755))

	files := []string{"board-F_Cu.gbr", "board-B_Cu.gbr", "board.drl"}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(gerbersDir, name), []byte("gerber data"), 0644))
	}

	zipPath, err := ArchiveGerbers(outputDir, "board")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "board_gerbers.zip"), zipPath)

	// zipの中身を確認
	reader, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer reader.Close()

	var names []string
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, files, names)
}

func TestArchiveGerbers_MissingDirectory(t *testing.T) {
	_, err := ArchiveGerbers(t.TempDir(), "board")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gerber outputs not found")
}

func TestArchiveGerbers_EmptyDirectory(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outputDir, "Gerbers"), 0755))

	_, err := ArchiveGerbers(outputDir, "board")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gerbers directory is empty")
}

func TestArchiveGerbers_SkipsSubdirectories(t *testing.T) {
	outputDir := t.TempDir()
	gerbersDir := filepath.Join(outputDir, "Gerbers")
	require.NoError(t, os.MkdirAll(filepath.Join(gerbersDir, "backup"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gerbersDir, "board-F_Cu.gbr"), []byte("data"), 0644))

	zipPath, err := ArchiveGerbers(outputDir, "board")
	require.NoError(t, err)

	reader, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer reader.Close()

	require.Len(t, reader.File, 1)
	assert.Equal(t, "board-F_Cu.gbr", reader.File[0].Name)
}
