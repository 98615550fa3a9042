package cubemap

import (
	"fmt"
	"path"
	"strings"
	"unicode"

	"skyboxmaker/internal/layout"
)

// imageExts are the extensions Load will try to decode; everything else in the input directory is ignored.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

// IsImageFile reports whether name has an extension Load decodes.
func IsImageFile(name string) bool {
	return imageExts[strings.ToLower(path.Ext(name))]
}

// Matcher assigns face image files to faces by the face names in the filename.
// "sky_Left.png", "skyLeft.jpg", "LEFT-01.bmp" and "skyboxleft.png" all match Left.
type Matcher struct {
	tokens map[string]layout.Face
}

// NewMatcher returns a Matcher for the six face names plus optional aliases, keyed by face name
// (e.g. {"Top": {"up", "py"}}). An alias claimed by two faces is an error.
func NewMatcher(aliases map[string][]string) (*Matcher, error) {
	m := &Matcher{tokens: make(map[string]layout.Face)}
	for _, f := range layout.Faces {
		m.tokens[strings.ToLower(f.String())] = f
	}
	for name, words := range aliases {
		f, err := layout.ParseFace(name)
		if err != nil {
			return nil, fmt.Errorf("cubemap: alias: %w", err)
		}
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			if prev, ok := m.tokens[w]; ok && prev != f {
				return nil, fmt.Errorf("cubemap: alias %q used for both %v and %v", w, prev, f)
			}
			m.tokens[w] = f
		}
	}
	return m, nil
}

// Match returns the face named by filename. Whole words and aliases are tried first; when none hits,
// any face name inside the stem counts, so "skyboxleft.png" and "FRONTtexture.png" still match.
// ok is false when no face is named; a filename naming more than one face returns ErrAmbiguousName.
func (m *Matcher) Match(filename string) (face layout.Face, ok bool, err error) {
	base := path.Base(filename)
	stem := strings.TrimSuffix(base, path.Ext(base))
	var found []layout.Face
	for _, tok := range tokenize(stem) {
		f, hit := m.tokens[tok]
		if !hit || containsFace(found, f) {
			continue
		}
		found = append(found, f)
	}
	if len(found) == 0 {
		found = facesInside(stem)
	}
	switch len(found) {
	case 0:
		return 0, false, nil
	case 1:
		return found[0], true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q names %v", ErrAmbiguousName, filename, found)
	}
}

// facesInside returns the faces whose names occur anywhere in stem, ignoring case.
func facesInside(stem string) []layout.Face {
	lower := strings.ToLower(stem)
	var found []layout.Face
	for _, f := range layout.Faces {
		if strings.Contains(lower, strings.ToLower(f.String())) {
			found = append(found, f)
		}
	}
	return found
}

func containsFace(faces []layout.Face, f layout.Face) bool {
	for _, x := range faces {
		if x == f {
			return true
		}
	}
	return false
}

// tokenize splits s into lower-case words at separators, letter/digit changes, and camelCase boundaries.
// "HDRSkyLeft_02" -> [hdr sky left 02].
func tokenize(s string) []string {
	rs := []rune(s)
	var out []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			out = append(out, strings.ToLower(string(rs[start:end])))
		}
		start = -1
	}
	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start >= 0 {
			prev := rs[i-1]
			switch {
			case unicode.IsDigit(r) != unicode.IsDigit(prev):
				flush(i)
			case unicode.IsUpper(r) && unicode.IsLower(prev):
				flush(i)
			case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				flush(i)
			}
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(rs))
	return out
}
