package cubemap

import (
	"errors"
	"strings"

	"skyboxmaker/internal/layout"
)

var (
	// ErrMissingFaces is matched by a *MissingFacesError.
	ErrMissingFaces = errors.New("Missing images?")
	// ErrDuplicateFace means two files in the input directory name the same face.
	ErrDuplicateFace = errors.New("more than one image for a face")
	// ErrAmbiguousName means one filename names more than one face.
	ErrAmbiguousName = errors.New("filename names more than one face")
)

// MissingFacesError lists the faces that had no image in the input directory.
type MissingFacesError struct {
	Faces []layout.Face
}

func (e *MissingFacesError) Error() string {
	names := make([]string, len(e.Faces))
	for i, f := range e.Faces {
		names[i] = f.String()
	}
	return ErrMissingFaces.Error() + " no image for " + strings.Join(names, ", ")
}

func (e *MissingFacesError) Is(target error) bool {
	return target == ErrMissingFaces
}
