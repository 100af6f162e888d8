package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/stardrift/internal/physics"
	"github.com/san-kum/stardrift/internal/telemetry"
)

// Update advances the session by elapsed seconds. A non-positive, NaN or
// infinite elapsed integrates nothing; the escape check and the edge counter reset
// still run. Once crashed, nothing moves until Restart.
func (s *Session) Update(elapsed float32) {
	defer s.input.EndFrame()

	step := elapsed > 0 && !math.IsInf(float64(elapsed), 1)
	if step {
		s.time += elapsed
	}

	cam := s.camera.Transform
	if !s.escape && cam.Position.Len() > EscapeDistance {
		s.escape = true
		s.log.Info().Float32("time", s.time).Float32("distance", cam.Position.Len()).Msg("escaped")
	}

	if s.crash || !step {
		return
	}

	s.craft.Position = s.craftRest.Add(mgl32.Vec3{0, bobAmplitude * float32(math.Sin(float64(bobRate*s.time))), 0})

	craftPos := s.craft.WorldPosition()
	for i := range s.bodies.Bodies {
		b := &s.bodies.Bodies[i]
		if !b.Active() {
			continue
		}
		b.Measure(craftPos)
		b.Spin(s.time)
	}

	prev := s.dominant
	s.dominant = s.bodies.Dominant(cam.Position, prev)
	if s.dominant != prev && s.dominant >= 0 {
		s.log.Debug().Str("body", s.bodies.Bodies[s.dominant].Name).Float32("time", s.time).Msg("dominant body changed")
	}
	if dom := s.Dominant(); dom != nil {
		a := physics.Acceleration(dom, cam.Position)
		cam.Position = cam.Position.Add(a.Mul(0.5 * elapsed * elapsed))
		s.bank(dom)
	}

	for i := range s.bodies.Bodies {
		b := &s.bodies.Bodies[i]
		if b.Active() && b.Collides(s.craftRadius) {
			s.crash = true
			s.log.Info().Str("body", b.Name).Float32("time", s.time).Float32("r", b.R).Msg("crashed")
			break
		}
	}

	s.move(elapsed)
	s.notify()
}

// bank turns the camera toward dom about forward x dir. The turn shrinks with
// distance and the forward vector follows the increment, so banking depends
// on the path taken. The acos result is passed through DegToRad as the game
// always has.
func (s *Session) bank(dom *physics.Body) {
	l := dom.Dir.Len()
	if l < 1e-6 {
		return
	}
	axis := s.forward.Cross(dom.Dir)
	if axis.Len() < 1e-6 {
		return
	}
	axis = axis.Normalize()

	cos := mgl32.Clamp(s.forward.Dot(dom.Dir.Mul(1/l)), -1, 1)
	angle := mgl32.DegToRad(float32(math.Acos(float64(cos))))
	q := mgl32.QuatRotate(angle*BankGain/dom.R, axis)

	cam := s.camera.Transform
	cam.Rotation = cam.Rotation.Mul(q).Normalize()
	s.forward = q.Rotate(s.forward)
}

// move applies W/S along the camera's forward axis. Left and right are
// tracked but not applied.
func (s *Session) move(elapsed float32) {
	_, y := s.input.Move()
	move := mgl32.Vec2{0, y}
	if move == (mgl32.Vec2{}) {
		return
	}
	move = move.Normalize().Mul(PlayerSpeed * elapsed)

	cam := s.camera.Transform
	frame := cam.LocalToParent()
	right := frame.Col(0).Vec3()
	forward := frame.Col(2).Vec3().Mul(-1)
	cam.Position = cam.Position.Add(right.Mul(move.X())).Add(forward.Mul(move.Y()))
}

func (s *Session) notify() {
	if len(s.observers) == 0 {
		return
	}
	sample := s.sample()
	for _, o := range s.observers {
		o.OnFrame(sample)
	}
}

func (s *Session) sample() telemetry.Sample {
	pos := s.camera.Transform.Position
	out := telemetry.Sample{
		Time:           s.time,
		Camera:         pos,
		OriginDistance: pos.Len(),
		Dominant:       s.dominant,
		Crashed:        s.crash,
		Escaped:        s.escape,
	}
	if dom := s.Dominant(); dom != nil {
		out.DominantName = dom.Name
		out.Clearance = dom.R - dom.Radius - s.craftRadius
	}
	return out
}
