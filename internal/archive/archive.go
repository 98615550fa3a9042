package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Options controls Unzip.
//
// Keep, if set, selects entries by their path inside the archive; others are skipped.
// Flatten writes every kept file directly into destDir under its base name, dropping the archive's
// directories; a later entry with the same base name is an error rather than an overwrite.
type Options struct {
	Keep    func(name string) bool
	Flatten bool
}

// Unzip extracts zipPath into destDir, preserving directory structure unless opts.Flatten is set.
// destDir is created if needed. Entries that would land outside destDir are skipped, as are macOS
// resource forks (__MACOSX/). Returns the list of extracted file paths, or an error.
func Unzip(zipPath, destDir string, opts Options) (extracted []string, err error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	defer r.Close()
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	written := make(map[string]string)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || strings.HasPrefix(f.Name, "__MACOSX/") {
			continue
		}
		if opts.Keep != nil && !opts.Keep(f.Name) {
			continue
		}
		rel := f.Name
		if opts.Flatten {
			rel = path.Base(f.Name)
			if prev, ok := written[rel]; ok {
				return extracted, fmt.Errorf("unzip: %s and %s both flatten to %s", prev, f.Name, rel)
			}
			written[rel] = f.Name
		}
		dest := filepath.Clean(filepath.Join(destDir, filepath.FromSlash(rel)))
		absDest, err := filepath.Abs(dest)
		if err != nil {
			return extracted, fmt.Errorf("unzip: %w", err)
		}
		if !strings.HasPrefix(absDest, absDir+string(os.PathSeparator)) {
			continue // skip path escape
		}
		if err := extractFile(f, dest); err != nil {
			return extracted, fmt.Errorf("unzip: %w", err)
		}
		extracted = append(extracted, dest)
	}
	return extracted, nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
