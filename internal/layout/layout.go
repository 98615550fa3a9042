package layout

import (
	"fmt"
	"image"
	"strings"
)

// Rows and Cols describe the cross-layout atlas: a 3×4 grid of which six cells hold cube faces.
const (
	Rows = 3
	Cols = 4
)

// Face identifies one side of the skybox cube.
type Face int

const (
	Left Face = iota
	Front
	Right
	Back
	Top
	Bottom
)

// Faces lists every face in table order. Left comes first and is the reference face for sizing.
var Faces = [...]Face{Left, Front, Right, Back, Top, Bottom}

var faceNames = [...]string{"Left", "Front", "Right", "Back", "Top", "Bottom"}

// Cell is a (row, col) position in the atlas grid. Row 0 is the top row.
type Cell struct {
	Row int
	Col int
}

// cells is the cross layout:
//
//	      Top
//	Left  Front  Right  Back
//	      Bottom
var cells = [...]Cell{
	Left:   {Row: 1, Col: 0},
	Front:  {Row: 1, Col: 1},
	Right:  {Row: 1, Col: 2},
	Back:   {Row: 1, Col: 3},
	Top:    {Row: 0, Col: 1},
	Bottom: {Row: 2, Col: 1},
}

// String returns the face name as it appears in face image filenames (e.g. "Left").
func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Left && f <= Bottom
}

// CellOf returns the atlas cell assigned to f.
func CellOf(f Face) Cell {
	return cells[f]
}

// ParseFace maps a face name to its Face, ignoring case and surrounding space.
func ParseFace(name string) (Face, error) {
	n := strings.TrimSpace(name)
	for i, fn := range faceNames {
		if strings.EqualFold(n, fn) {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("layout: unknown face %q", name)
}

// AtlasUV maps a face-local UV in [0,1] into atlas space: u' = (u + col)/Cols, v' = (v + row)/Rows.
func AtlasUV(f Face, u, v float32) (float32, float32) {
	c := cells[f]
	return (u + float32(c.Col)) / Cols, (v + float32(c.Row)) / Rows
}

// Rect returns the pixel rectangle of the cell in an atlas whose faces are w×h pixels.
func (c Cell) Rect(w, h int) image.Rectangle {
	return image.Rect(c.Col*w, c.Row*h, (c.Col+1)*w, (c.Row+1)*h)
}

// CanvasSize returns the atlas size in pixels for faces of w×h pixels.
func CanvasSize(w, h int) (width, height int) {
	return Cols * w, Rows * h
}
