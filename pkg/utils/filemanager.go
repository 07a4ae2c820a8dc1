// =============================================================================
// Menu Files Generator - File Manager Utility
// =============================================================================
//
// This module provides the file operations used to publish the add-in
// artifacts next to the input table:
//   - Output path derivation
//   - Replace-in-place writes (temp file + rename)
//   - Single-entry archive packaging
//
// WRITE STRATEGY:
//   - Every artifact is written to a temp file in its destination directory
//     and renamed over the target, so a failed write never leaves a truncated
//     artifact behind
//   - An existing archive is removed before the new one is created
//
// =============================================================================

package utils

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// OUTPUT PATHS
// =============================================================================

// OutputPaths holds the artifact locations derived from an input table.
type OutputPaths struct {
	// Dir is the directory of the input table.
	Dir string

	// AddinName is the input file name without its extension.
	AddinName string

	// Config is <dir>/<addin>.cfg.
	Config string

	// Layout is <dir>/<layoutFileName>.
	Layout string

	// Archive is <dir>/<addin>.cuix.
	Archive string
}

// DeriveOutputPaths computes where the artifacts for inputPath are written.
func DeriveOutputPaths(inputPath, layoutFileName string) OutputPaths {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	addinName := strings.TrimSuffix(base, filepath.Ext(base))

	return OutputPaths{
		Dir:       dir,
		AddinName: addinName,
		Config:    filepath.Join(dir, addinName+".cfg"),
		Layout:    filepath.Join(dir, layoutFileName),
		Archive:   filepath.Join(dir, addinName+".cuix"),
	}
}

// =============================================================================
// FILE WRITING
// =============================================================================

// WriteFile replaces path with data. The data is written to a temp file in
// the same directory first and renamed into place once it is fully flushed.
func WriteFile(path string, data []byte) error {
	return WriteFileFunc(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// WriteFileFunc is WriteFile for streaming producers.
func WriteFileFunc(path string, produce func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = produce(tmp); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	return nil
}

// =============================================================================
// ARCHIVE PACKAGING
// =============================================================================

// PackageArchive wraps sourcePath as the single entry entryName of a zip
// archive at archivePath. A pre-existing archive is removed first.
//
// PARAMETERS:
//   - archivePath: The archive to create (e.g. Tools.cuix).
//   - sourcePath: The file to store.
//   - entryName: The name of the entry inside the archive.
//
// RETURNS:
//   - An error if the source cannot be read or the archive cannot be written.
func PackageArchive(archivePath, sourcePath, entryName string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open archive source: %w", err)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive source: %w", err)
	}

	if err := RemoveIfExists(archivePath); err != nil {
		return err
	}

	return WriteFileFunc(archivePath, func(w io.Writer) error {
		archive := zip.NewWriter(w)

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("failed to build entry header: %w", err)
		}
		header.Name = entryName
		header.Method = zip.Deflate

		entry, err := archive.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create entry %s: %w", entryName, err)
		}
		if _, err := io.Copy(entry, source); err != nil {
			return fmt.Errorf("failed to compress %s: %w", entryName, err)
		}

		return archive.Close()
	})
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RemoveIfExists deletes path, ignoring a missing file.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
