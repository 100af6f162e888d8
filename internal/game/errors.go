package game

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors.
var (
	// ErrCameraCount indicates a scene without exactly one camera.
	ErrCameraCount = errors.New("game: scene must have exactly one camera")

	// ErrCraftMissing indicates the scene has no craft transform.
	ErrCraftMissing = errors.New("game: craft transform not found")

	// ErrBodyMissing indicates a body transform was not found in strict mode.
	ErrBodyMissing = errors.New("game: body transform not found")
)

// CameraCountError reports how many cameras the scene actually had.
type CameraCountError struct {
	Count int
}

func (e *CameraCountError) Error() string {
	return fmt.Sprintf("game: expecting scene to have exactly one camera, but it has %d", e.Count)
}

func (e *CameraCountError) Unwrap() error {
	return ErrCameraCount
}

// MissingBodiesError lists the body names a strict session could not bind.
type MissingBodiesError struct {
	Names []string
}

func (e *MissingBodiesError) Error() string {
	return fmt.Sprintf("game: %d body transforms not found: %s", len(e.Names), strings.Join(e.Names, ", "))
}

func (e *MissingBodiesError) Unwrap() error {
	return ErrBodyMissing
}
