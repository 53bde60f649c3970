package summary

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArchiveGerbers は出力ディレクトリのGerbersサブディレクトリを
// <プロジェクト名>_gerbers.zip に圧縮し、zipのパスを返します
// Gerbers ディレクトリが無い（未エクスポート）場合はエラーです
func ArchiveGerbers(outputDir, projectName string) (string, error) {
	gerbersDir := filepath.Join(outputDir, "Gerbers")

	info, err := os.Stat(gerbersDir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("gerber outputs not found: %s (run the export first)", gerbersDir)
	}

	entries, err := os.ReadDir(gerbersDir)
	if err != nil {
		return "", fmt.Errorf("failed to read gerbers directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return "", fmt.Errorf("gerbers directory is empty: %s", gerbersDir)
	}

	zipPath := filepath.Join(outputDir, projectName+"_gerbers.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("failed to create zip: %w", err)
	}
	defer zipFile.Close()

	writer := zip.NewWriter(zipFile)
	for _, name := range names {
		if err := addFileToZip(writer, filepath.Join(gerbersDir, name), name); err != nil {
			return "", err
		}
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize zip: %w", err)
	}
	return zipPath, nil
}

func addFileToZip(writer *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	entry, err := writer.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create zip entry %s: %w", name, err)
	}

	if _, err := io.Copy(entry, f); err != nil {
		return fmt.Errorf("failed to write zip entry %s: %w", name, err)
	}
	return nil
}
