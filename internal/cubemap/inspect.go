package cubemap

import (
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	"skyboxmaker/internal/layout"
)

// Kind is the skybox image layout guessed from an image's proportions.
type Kind string

const (
	KindCross    Kind = "cross"    // 4×3 grid of square faces, as Compose writes
	KindEquirect Kind = "equirect" // 2:1 panorama
	KindUnknown  Kind = "unknown"
)

// equirectAspectMin/Max: width/height ratio for equirectangular panorama (typically 2:1).
const (
	equirectAspectMin = 1.8
	equirectAspectMax = 2.2
)

// Info describes a skybox image on disk.
type Info struct {
	Format   string
	Size     image.Point
	Kind     Kind
	FaceSize image.Point // zero unless Kind is KindCross
}

// DetectKind classifies a w×h image. A cross layout needs dimensions that split evenly into
// layout.Cols × layout.Rows square cells.
func DetectKind(w, h int) Kind {
	if w <= 0 || h <= 0 {
		return KindUnknown
	}
	if w%layout.Cols == 0 && h%layout.Rows == 0 && w/layout.Cols == h/layout.Rows {
		return KindCross
	}
	aspect := float64(w) / float64(h)
	if aspect >= equirectAspectMin && aspect <= equirectAspectMax {
		return KindEquirect
	}
	return KindUnknown
}

// Inspect reads only the header of the image at path and reports its layout.
func Inspect(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("cubemap: inspect: %w", err)
	}
	defer f.Close()
	return inspect(f, path)
}

// InspectFS is Inspect against fsys.
func InspectFS(fsys fs.FS, name string) (Info, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Info{}, fmt.Errorf("cubemap: inspect: %w", err)
	}
	defer f.Close()
	return inspect(f, name)
}

func inspect(r io.Reader, name string) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("cubemap: inspect %s: %w", name, err)
	}
	info := Info{
		Format: format,
		Size:   image.Pt(cfg.Width, cfg.Height),
		Kind:   DetectKind(cfg.Width, cfg.Height),
	}
	if info.Kind == KindCross {
		info.FaceSize = image.Pt(cfg.Width/layout.Cols, cfg.Height/layout.Rows)
	}
	return info, nil
}
