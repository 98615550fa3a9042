package primitives

import (
	"github.com/chewxy/math32"

	"skyboxmaker/internal/layout"
)

// VerticesPerFace is two triangles per cube side, no index buffer.
const VerticesPerFace = 6

// Vertex is a position plus a UV coordinate. For the cube table the UV is local to one face, in [0,1].
type Vertex struct {
	X, Y, Z float32
	U, V    float32
}

// FaceMesh is one side of the cube: the face it shows, a short label for generated output, and its two triangles.
type FaceMesh struct {
	Face     layout.Face
	Label    string
	Vertices [VerticesPerFace]Vertex
}

// skyboxCube is a 2×2×2 cube centered on the origin, seen from inside. V grows downward to match image rows.
var skyboxCube = [...]FaceMesh{
	{
		Face:  layout.Front,
		Label: "Front face (negative Z)",
		Vertices: [VerticesPerFace]Vertex{
			{-1, -1, -1, 0, 1},
			{1, -1, -1, 1, 1},
			{1, 1, -1, 1, 0},
			{1, 1, -1, 1, 0},
			{-1, 1, -1, 0, 0},
			{-1, -1, -1, 0, 1},
		},
	},
	{
		Face:  layout.Back,
		Label: "Back face (positive Z)",
		Vertices: [VerticesPerFace]Vertex{
			{-1, -1, 1, 1, 1},
			{1, -1, 1, 0, 1},
			{1, 1, 1, 0, 0},
			{1, 1, 1, 0, 0},
			{-1, 1, 1, 1, 0},
			{-1, -1, 1, 1, 1},
		},
	},
	{
		Face:  layout.Left,
		Label: "Left face (negative X)",
		Vertices: [VerticesPerFace]Vertex{
			{-1, 1, 1, 0, 0},
			{-1, 1, -1, 1, 0},
			{-1, -1, -1, 1, 1},
			{-1, -1, -1, 1, 1},
			{-1, -1, 1, 0, 1},
			{-1, 1, 1, 0, 0},
		},
	},
	{
		Face:  layout.Right,
		Label: "Right face (positive X)",
		Vertices: [VerticesPerFace]Vertex{
			{1, 1, 1, 1, 0},
			{1, 1, -1, 0, 0},
			{1, -1, -1, 0, 1},
			{1, -1, -1, 0, 1},
			{1, -1, 1, 1, 1},
			{1, 1, 1, 1, 0},
		},
	},
	{
		Face:  layout.Bottom,
		Label: "Bottom face (negative Y)",
		Vertices: [VerticesPerFace]Vertex{
			{-1, -1, -1, 0, 0},
			{1, -1, -1, 1, 0},
			{1, -1, 1, 1, 1},
			{1, -1, 1, 1, 1},
			{-1, -1, 1, 0, 1},
			{-1, -1, -1, 0, 0},
		},
	},
	{
		Face:  layout.Top,
		Label: "Top face (positive Y)",
		Vertices: [VerticesPerFace]Vertex{
			{-1, 1, -1, 0, 1},
			{1, 1, -1, 1, 1},
			{1, 1, 1, 1, 0},
			{1, 1, 1, 1, 0},
			{-1, 1, 1, 0, 0},
			{-1, 1, -1, 0, 1},
		},
	},
}

// SkyboxCube returns a copy of the skybox cube table: six faces in the order Front, Back, Left, Right, Bottom, Top.
func SkyboxCube() []FaceMesh {
	out := make([]FaceMesh, len(skyboxCube))
	copy(out, skyboxCube[:])
	return out
}

// Normal returns the unit normal of the first triangle of m, following its winding (counter-clockwise = front).
// Degenerate triangles yield the zero vector.
func (m FaceMesh) Normal() [3]float32 {
	a, b, c := m.Vertices[0], m.Vertices[1], m.Vertices[2]
	e1 := [3]float32{b.X - a.X, b.Y - a.Y, b.Z - a.Z}
	e2 := [3]float32{c.X - a.X, c.Y - a.Y, c.Z - a.Z}
	n := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	length := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if length == 0 {
		return [3]float32{}
	}
	return [3]float32{n[0] / length, n[1] / length, n[2] / length}
}
