package primitives

import (
	"testing"

	"skyboxmaker/internal/layout"
)

func TestSkyboxCubeCoversEveryFaceOnce(t *testing.T) {
	cube := SkyboxCube()
	if len(cube) != len(layout.Faces) {
		t.Fatalf("len(SkyboxCube()) = %d, want %d", len(cube), len(layout.Faces))
	}
	seen := make(map[layout.Face]bool)
	total := 0
	for _, m := range cube {
		if seen[m.Face] {
			t.Errorf("face %v appears twice", m.Face)
		}
		seen[m.Face] = true
		total += len(m.Vertices)
	}
	if total != 36 {
		t.Errorf("total vertices = %d, want 36", total)
	}
}

func TestSkyboxCubeVerticesLieOnTheirFace(t *testing.T) {
	// axis index and sign of the plane each face lies on
	planes := map[layout.Face]struct {
		axis int
		at   float32
	}{
		layout.Front:  {2, -1},
		layout.Back:   {2, 1},
		layout.Left:   {0, -1},
		layout.Right:  {0, 1},
		layout.Bottom: {1, -1},
		layout.Top:    {1, 1},
	}
	for _, m := range SkyboxCube() {
		p := planes[m.Face]
		for i, v := range m.Vertices {
			pos := [3]float32{v.X, v.Y, v.Z}
			if pos[p.axis] != p.at {
				t.Errorf("%v vertex %d = %v, not on plane axis %d = %v", m.Face, i, pos, p.axis, p.at)
			}
			if v.U < 0 || v.U > 1 || v.V < 0 || v.V > 1 {
				t.Errorf("%v vertex %d local UV (%v, %v) outside [0,1]", m.Face, i, v.U, v.V)
			}
		}
	}
}

func TestSkyboxCubeReturnsCopy(t *testing.T) {
	a := SkyboxCube()
	a[0].Vertices[0].X = 99
	b := SkyboxCube()
	if b[0].Vertices[0].X == 99 {
		t.Error("SkyboxCube() shares storage between calls")
	}
}

func TestNormalIsAxisAligned(t *testing.T) {
	for _, m := range SkyboxCube() {
		n := m.Normal()
		var nonZero int
		for _, c := range n {
			switch c {
			case 0:
			case 1, -1:
				nonZero++
			default:
				t.Errorf("%v normal %v is not axis aligned", m.Face, n)
			}
		}
		if nonZero != 1 {
			t.Errorf("%v normal %v should have exactly one unit component", m.Face, n)
		}
	}
}

func TestNormalDegenerate(t *testing.T) {
	var m FaceMesh
	if n := m.Normal(); n != [3]float32{} {
		t.Errorf("degenerate normal = %v, want zero", n)
	}
}
