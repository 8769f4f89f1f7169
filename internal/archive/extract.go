// Package archive unpacks downloaded report bundles. The portal delivers
// weekly exports as ZIP files; everything else about acquiring them is
// outside this pipeline.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ExtractAll unpacks every ZIP file in dir, flattening the Excel members
// it contains into the same directory. A bad archive is logged and
// skipped; the returned paths cover only what actually landed on disk.
func ExtractAll(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var extracted []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			continue
		}
		files, err := extractOne(filepath.Join(dir, entry.Name()), dir)
		if err != nil {
			log.Printf("[archive] failed to extract %s: %v", entry.Name(), err)
			continue
		}
		log.Printf("[archive] extracted %d Excel file(s) from %s", len(files), entry.Name())
		extracted = append(extracted, files...)
	}

	return extracted, nil
}

func extractOne(zipPath, destDir string) ([]string, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer func() { _ = reader.Close() }()

	var files []string
	for _, member := range reader.File {
		if member.FileInfo().IsDir() || !isExcelFile(member.Name) {
			continue
		}
		// Flatten member paths; archive-internal directories are not
		// trusted as filesystem layout.
		dest := filepath.Join(destDir, filepath.Base(member.Name))
		if err := writeMember(member, dest); err != nil {
			return files, err
		}
		files = append(files, dest)
	}
	return files, nil
}

func writeMember(member *zip.File, dest string) error {
	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("failed to open member %s: %w", member.Name, err)
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

func isExcelFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".xls" || ext == ".xlsx"
}
