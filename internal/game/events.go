package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/stardrift/internal/input"
)

// HandleEvent applies one input event and reports whether it was consumed.
// win is the current window size; mouse motion is normalized by its height.
func (s *Session) HandleEvent(evt input.Event, win input.WindowSize) bool {
	switch evt.Type {
	case input.KeyDown:
		if evt.Key == input.KeyEscape {
			s.input.Uncapture()
			return true
		}
		if !s.input.Press(evt.Key) {
			return false
		}
		if evt.Key == input.KeyR {
			s.Restart()
		}
		return true
	case input.KeyUp:
		return s.input.Release(evt.Key)
	case input.MouseButtonDown:
		return s.input.Capture()
	case input.MouseMotion:
		if s.crash || !s.input.Captured() || win.Height <= 0 {
			return false
		}
		h := float32(win.Height)
		s.look(evt.XRel/h, -evt.YRel/h)
		return true
	}
	return false
}

// look yaws by -dx and pitches by dy, both scaled by the field of view, then
// re-applies the full camera rotation to the cached forward vector.
func (s *Session) look(dx, dy float32) {
	cam := s.camera.Transform
	fovy := s.camera.Fovy
	cam.Rotation = cam.Rotation.
		Mul(mgl32.QuatRotate(-dx*fovy, mgl32.Vec3{0, 1, 0})).
		Mul(mgl32.QuatRotate(dy*fovy, mgl32.Vec3{1, 0, 0})).
		Normalize()
	s.forward = cam.Rotation.Rotate(s.forward)
}
