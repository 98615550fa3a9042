package cubemap

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"skyboxmaker/internal/layout"
	"skyboxmaker/internal/logger"
)

// Set holds one decoded image per face, indexed by layout.Face, and the file each came from.
type Set struct {
	Images [len(layout.Faces)]image.Image
	Files  [len(layout.Faces)]string
}

// Load scans the top level of fsys, assigns image files to faces with m, and decodes the six matches.
// Files that name no face are skipped. Every face must have exactly one file: a missing face returns a
// *MissingFacesError and nothing is decoded.
func Load(fsys fs.FS, m *Matcher, log *logger.Logger) (*Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("cubemap: read input dir: %w", err)
	}
	set := &Set{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !IsImageFile(name) {
			log.Debugf("skip %s: not an image file", name)
			continue
		}
		f, ok, err := m.Match(name)
		if err != nil {
			return nil, fmt.Errorf("cubemap: %w", err)
		}
		if !ok {
			log.Debugf("skip %s: no face name", name)
			continue
		}
		if prev := set.Files[f]; prev != "" {
			return nil, fmt.Errorf("cubemap: %w: %v from %q and %q", ErrDuplicateFace, f, prev, name)
		}
		set.Files[f] = name
	}

	var missing []layout.Face
	for _, f := range layout.Faces {
		if set.Files[f] == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFacesError{Faces: missing}
	}

	for _, f := range layout.Faces {
		img, err := decodeFile(fsys, set.Files[f])
		if err != nil {
			return nil, fmt.Errorf("cubemap: %v face: %w", f, err)
		}
		log.Debugf("%v <- %s (%dx%d)", f, set.Files[f], img.Bounds().Dx(), img.Bounds().Dy())
		set.Images[f] = img
	}
	return set, nil
}

func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	r, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty image", name)
	}
	return img, nil
}
