package uvgen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"skyboxmaker/internal/layout"
	"skyboxmaker/internal/primitives"
)

// Output formats accepted by Write.
const (
	FormatC   = "c"
	FormatOBJ = "obj"
)

// Formats lists the accepted output format names.
var Formats = []string{FormatC, FormatOBJ}

// Remap returns m with every UV moved from face-local space into the face's atlas cell. Positions are unchanged.
func Remap(m primitives.FaceMesh) primitives.FaceMesh {
	out := m
	for i, v := range m.Vertices {
		out.Vertices[i].U, out.Vertices[i].V = layout.AtlasUV(m.Face, v.U, v.V)
	}
	return out
}

// Generate returns the skybox cube with atlas UVs, in table order.
func Generate() []primitives.FaceMesh {
	cube := primitives.SkyboxCube()
	for i := range cube {
		cube[i] = Remap(cube[i])
	}
	return cube
}

// Write renders meshes to w in the named format.
//
// FormatC emits one block per face: the label as a // comment, then one "x,\ty,\tz,\tu,\tv," line per vertex,
// then a blank line, ready to paste into a float array initializer.
// FormatOBJ emits a Wavefront OBJ with one vn per face and two triangles per face. OBJ texture space has V
// pointing up, so V is flipped on the way out.
func Write(w io.Writer, meshes []primitives.FaceMesh, format string) error {
	bw := bufio.NewWriter(w)
	switch strings.ToLower(format) {
	case FormatC:
		writeC(bw, meshes)
	case FormatOBJ:
		writeOBJ(bw, meshes)
	default:
		return fmt.Errorf("uvgen: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("uvgen: %w", err)
	}
	return nil
}

func writeC(w *bufio.Writer, meshes []primitives.FaceMesh) {
	for _, m := range meshes {
		fmt.Fprintf(w, "// %s\n", m.Label)
		for _, v := range m.Vertices {
			fmt.Fprintf(w, "%s,\t%s,\t%s,\t%s,\t%s,\n",
				formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z), formatFloat(v.U), formatFloat(v.V))
		}
		w.WriteString("\n")
	}
}

func writeOBJ(w *bufio.Writer, meshes []primitives.FaceMesh) {
	w.WriteString("# skybox cube, UVs in 3x4 cross-layout atlas space\n")
	base := 1
	for i, m := range meshes {
		fmt.Fprintf(w, "\n# %s\n", m.Label)
		for _, v := range m.Vertices {
			fmt.Fprintf(w, "v %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
		}
		for _, v := range m.Vertices {
			fmt.Fprintf(w, "vt %s %s\n", formatFloat(v.U), formatFloat(1-v.V))
		}
		n := m.Normal()
		fmt.Fprintf(w, "vn %s %s %s\n", formatFloat(n[0]), formatFloat(n[1]), formatFloat(n[2]))
		ni := i + 1
		for t := 0; t < primitives.VerticesPerFace; t += 3 {
			a, b, c := base+t, base+t+1, base+t+2
			fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, ni, b, b, ni, c, c, ni)
		}
		base += primitives.VerticesPerFace
	}
}

// formatFloat prints the shortest float32 representation, always with a decimal point so the literal stays a float.
func formatFloat(f float32) string {
	if f == 0 {
		f = 0 // drop negative zero
	}
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
