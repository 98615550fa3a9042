package cubemap

import (
	"fmt"
	"image"
	"io/fs"
	"os"

	"skyboxmaker/internal/layout"
	"skyboxmaker/internal/logger"
)

// Default input and output locations, relative to the working directory.
const (
	DefaultInputDir = "Skybox"
	DefaultOutput   = "output_cubemap.bmp"
)

// Options controls one compositing run. Zero fields take the defaults above.
type Options struct {
	InputDir string
	Output   string
	Filter   string
	Aliases  map[string][]string
}

// Result describes a written cubemap.
type Result struct {
	Output   string
	FaceSize image.Point
	Size     image.Point
	Files    [len(layout.Faces)]string
	Resized  []layout.Face
}

// Build loads the six faces from opts.InputDir, normalizes their sizes, composes the cross-layout atlas,
// and writes it to opts.Output as a BMP.
func Build(opts Options, log *logger.Logger) (*Result, error) {
	if opts.InputDir == "" {
		opts.InputDir = DefaultInputDir
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	info, err := os.Stat(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("cubemap: input dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cubemap: input %s is not a directory", opts.InputDir)
	}
	res, img, err := BuildFS(os.DirFS(opts.InputDir), opts, log)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(opts.Output, img); err != nil {
		return nil, err
	}
	res.Output = opts.Output
	log.Infof("wrote %s (%dx%d, faces %dx%d)", opts.Output, res.Size.X, res.Size.Y, res.FaceSize.X, res.FaceSize.Y)
	return res, nil
}

// BuildFS runs the load, normalize and compose steps against fsys without writing anything.
func BuildFS(fsys fs.FS, opts Options, log *logger.Logger) (*Result, *image.NRGBA, error) {
	filter, err := ParseFilter(opts.Filter)
	if err != nil {
		return nil, nil, err
	}
	m, err := NewMatcher(opts.Aliases)
	if err != nil {
		return nil, nil, err
	}
	set, err := Load(fsys, m, log)
	if err != nil {
		return nil, nil, err
	}
	resized := set.Normalize(filter, log)
	img := set.Compose()
	return &Result{
		FaceSize: set.FaceSize(),
		Size:     img.Bounds().Size(),
		Files:    set.Files,
		Resized:  resized,
	}, img, nil
}
