package cubemap

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"

	"skyboxmaker/internal/layout"
	"skyboxmaker/internal/logger"
)

// DefaultFilter is the resampling filter used for mismatched faces when none is configured.
const DefaultFilter = "linear"

var filters = map[string]transform.ResampleFilter{
	"nearest":    transform.NearestNeighbor,
	"box":        transform.Box,
	"linear":     transform.Linear,
	"gaussian":   transform.Gaussian,
	"mitchell":   transform.MitchellNetravali,
	"catmullrom": transform.CatmullRom,
	"lanczos":    transform.Lanczos,
}

// FilterNames returns the accepted resampling filter names, sorted.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for n := range filters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseFilter maps a filter name to a bild resampling filter. The empty name selects DefaultFilter.
func ParseFilter(name string) (transform.ResampleFilter, error) {
	if name == "" {
		name = DefaultFilter
	}
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return transform.ResampleFilter{}, fmt.Errorf("cubemap: unknown filter %q (want one of %s)", name, strings.Join(FilterNames(), ", "))
	}
	return f, nil
}

// FaceSize is the size every face is normalized to: the size of the Left face.
func (s *Set) FaceSize() image.Point {
	return s.Images[layout.Left].Bounds().Size()
}

// Normalize resizes every face whose size differs from FaceSize, stretching without keeping the aspect
// ratio. It returns the faces that were resized.
func (s *Set) Normalize(filter transform.ResampleFilter, log *logger.Logger) []layout.Face {
	ref := s.FaceSize()
	var resized []layout.Face
	for _, f := range layout.Faces {
		size := s.Images[f].Bounds().Size()
		if size == ref {
			continue
		}
		log.Warnf("Mismatched sizes: %dx%d to %dx%d - having to resize", ref.X, ref.Y, size.X, size.Y)
		s.Images[f] = transform.Resize(s.Images[f], ref.X, ref.Y, filter)
		resized = append(resized, f)
	}
	return resized
}

// Compose copies each face into its cell of a Cols×Rows grid canvas. All faces must already be FaceSize.
// The result is opaque: source alpha is dropped and cells without a face are black.
func (s *Set) Compose() *image.NRGBA {
	size := s.FaceSize()
	w, h := layout.CanvasSize(size.X, size.Y)
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	for _, f := range layout.Faces {
		img := s.Images[f]
		cell := layout.CellOf(f).Rect(size.X, size.Y)
		xdraw.Copy(canvas, cell.Min, img, img.Bounds(), xdraw.Src, nil)
	}
	for i := 3; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 0xff
	}
	return canvas
}
