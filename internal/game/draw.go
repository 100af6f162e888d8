package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/stardrift/internal/input"
	"github.com/san-kum/stardrift/internal/physics"
)

// Overlay text.
const (
	HelpText     = "Mouse motion rotates camera; WS moves; R to restart; escape ungrabs mouse"
	CrashBanner  = "You are crashed! R to restart"
	EscapeBanner = "Congratulations! You have escaped"
)

// BodyView is what a presenter needs to draw one body.
type BodyView struct {
	Name     string
	Class    physics.Class
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Radius   float32
	Dominant bool
}

// Frame is the read-only snapshot handed to a Presenter.
type Frame struct {
	CameraPosition mgl32.Vec3
	CameraRotation mgl32.Quat
	CameraWorld    mgl32.Mat4
	Fovy           float32
	Aspect         float32
	Near           float32
	Time           float32

	Craft  mgl32.Vec3
	Bodies []BodyView

	DominantName   string
	OriginDistance float32
	State          State
	Help           string
	Banners        []string
}

// Presenter renders a frame. Implementations must not keep references to
// Frame.Bodies past the call.
type Presenter interface {
	Present(f Frame)
}

// Draw updates the camera aspect ratio for the drawable and hands the current
// frame to the presenter, if any.
func (s *Session) Draw(size input.WindowSize) {
	if size.Width > 0 && size.Height > 0 {
		s.camera.Aspect = float32(size.Width) / float32(size.Height)
	}
	if s.presenter == nil {
		return
	}
	s.presenter.Present(s.Frame())
}

// Frame snapshots the session for presentation.
func (s *Session) Frame() Frame {
	cam := s.camera.Transform
	f := Frame{
		CameraPosition: cam.Position,
		CameraRotation: cam.Rotation,
		CameraWorld:    cam.LocalToWorld(),
		Fovy:           s.camera.Fovy,
		Aspect:         s.camera.Aspect,
		Near:           s.camera.Near,
		Time:           s.time,
		Craft:          s.craft.WorldPosition(),
		OriginDistance: cam.Position.Len(),
		State:          s.State(),
		Help:           HelpText,
	}
	for i := range s.bodies.Bodies {
		b := &s.bodies.Bodies[i]
		if !b.Active() {
			continue
		}
		f.Bodies = append(f.Bodies, BodyView{
			Name:     b.Name,
			Class:    b.Class,
			Position: b.Transform.Position,
			Rotation: b.Transform.Rotation,
			Radius:   b.Radius,
			Dominant: i == s.dominant,
		})
	}
	if dom := s.Dominant(); dom != nil {
		f.DominantName = dom.Name
	}
	if s.crash {
		f.Banners = append(f.Banners, CrashBanner)
	}
	if s.escape {
		f.Banners = append(f.Banners, EscapeBanner)
	}
	return f
}
