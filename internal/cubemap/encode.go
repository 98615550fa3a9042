package cubemap

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// Encode writes img as a BMP. Opaque images are written as 24-bit.
func Encode(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("cubemap: encode bmp: %w", err)
	}
	return nil
}

// WriteFile encodes img as a BMP at path. It writes to a temporary file in the same directory and renames it
// into place, so a failed run never leaves a partial image behind.
func WriteFile(path string, img image.Image) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cubemap: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("cubemap: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if err := Encode(tmp, img); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cubemap: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cubemap: %w", err)
	}
	return nil
}
