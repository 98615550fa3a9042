package facegen

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chewxy/math32"

	"skyboxmaker/internal/layout"
)

// Options controls placeholder face generation.
// Size is the edge length of each square face in pixels. Seed controls randomness; Seed == 0 uses a
// time-based seed. Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type Options struct {
	Size int

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a sane default configuration.
func DefaultOptions() Options {
	return Options{
		Size:       256,
		Seed:       0,
		Octaves:    4,
		Frequency:  0.02,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

// faceTints gives every face its own hue so a misplaced face is obvious in the composed atlas.
var faceTints = [...]color.NRGBA{
	layout.Left:   {R: 220, G: 90, B: 90},
	layout.Front:  {R: 90, G: 200, B: 90},
	layout.Right:  {R: 90, G: 110, B: 230},
	layout.Back:   {R: 230, G: 200, B: 80},
	layout.Top:    {R: 120, G: 210, B: 230},
	layout.Bottom: {R: 150, G: 120, B: 90},
}

// Face renders a cloudy placeholder image for f: fractal value noise tinted with the face's color.
// The noise domain is offset per face, so faces differ even with the same seed.
func Face(f layout.Face, opts Options) *image.NRGBA {
	opts = withDefaults(opts)
	img := image.NewNRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	tint := faceTints[f]
	noise := fbm{seed: uint32(opts.Seed) ^ uint32(opts.Seed>>32), octaves: opts.Octaves, lacunarity: opts.Lacunarity, gain: opts.Gain}
	offset := float32(f) * 1000
	for y := 0; y < opts.Size; y++ {
		for x := 0; x < opts.Size; x++ {
			h := noise.at((float32(x)+offset)*opts.Frequency, float32(y)*opts.Frequency)
			if !isFinite(h) {
				h = 0
			}
			// Map [0,1] noise to [0.35,1] brightness so the tint stays visible.
			k := 0.35 + 0.65*clamp01(h)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(float32(tint.R) * k),
				G: uint8(float32(tint.G) * k),
				B: uint8(float32(tint.B) * k),
				A: 0xff,
			})
		}
	}
	return img
}

// WriteSet renders all six faces and saves them as dir/<Face>.png. Returns the written paths.
func WriteSet(dir string, opts Options) ([]string, error) {
	opts = withDefaults(opts)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("facegen: %w", err)
	}
	paths := make([]string, 0, len(layout.Faces))
	for _, f := range layout.Faces {
		p := filepath.Join(dir, f.String()+".png")
		if err := imgio.Save(p, Face(f, opts), imgio.PNGEncoder()); err != nil {
			return paths, fmt.Errorf("facegen: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Size <= 0 {
		opts.Size = def.Size
	}
	if opts.Octaves <= 0 {
		opts.Octaves = def.Octaves
	}
	if opts.Frequency <= 0 {
		opts.Frequency = def.Frequency
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = def.Lacunarity
	}
	if opts.Gain <= 0 {
		opts.Gain = def.Gain
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts
}

// fbm is fractal Brownian motion over lattice value noise: octaves layered at rising frequency and
// falling amplitude, normalized back into [0,1].
type fbm struct {
	seed       uint32
	octaves    int
	lacunarity float32
	gain       float32
}

func (n fbm) at(x, y float32) float32 {
	var sum, norm float32
	amp, freq := float32(1), float32(1)
	for o := 0; o < n.octaves; o++ {
		sum += amp * lattice(x*freq, y*freq, n.seed+uint32(o)*0x9e3779b9)
		norm += amp
		amp *= n.gain
		freq *= n.lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// lattice interpolates random corner values of the unit cell holding (x, y) with a smoothstep curve.
func lattice(x, y float32, seed uint32) float32 {
	fx, fy := math32.Floor(x), math32.Floor(y)
	ix, iy := int32(fx), int32(fy)
	sx, sy := smoothStep(x-fx), smoothStep(y-fy)
	top := mix(corner(ix, iy, seed), corner(ix+1, iy, seed), sx)
	bottom := mix(corner(ix, iy+1, seed), corner(ix+1, iy+1, seed), sx)
	return mix(top, bottom, sy)
}

// corner hashes a lattice point to [0,1] with an xorshift-multiply mix.
func corner(x, y int32, seed uint32) float32 {
	h := uint32(x)*0x27d4eb2d ^ uint32(y)*0x165667b1 ^ seed
	h ^= h >> 15
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return float32(h>>8) / (1 << 24)
}

func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

func smoothStep(t float32) float32 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

func clamp01(f float32) float32 {
	return math32.Max(0, math32.Min(1, f))
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
