package physics

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/stardrift/internal/scene"
)

// Count is the fixed number of body slots: heavy bodies first, then light.
const Count = scene.HeavyBodies + scene.LightBodies

// Body classes.
type Class int

const (
	Heavy Class = iota
	Light
)

func (c Class) String() string {
	if c == Heavy {
		return "heavy"
	}
	return "light"
}

// Mass and radius per class.
const (
	HeavyMass   = 50000.0
	HeavyRadius = 15.0
	LightMass   = 20000.0
	LightRadius = 2.5
)

// Self-rotation speed range in degrees per second, [MinSpeed, MaxSpeed).
const (
	MinSpeed = 20
	MaxSpeed = 100
)

// initialDistance is the distance a slot reports before its first frame.
const initialDistance = 100.0

// Body is one gravitating body bound to a scene transform.
type Body struct {
	Name      string
	Transform *scene.Transform // nil when the name was not found
	Class     Class
	Mass      float32
	Radius    float32
	Speed     float32 // degrees per second
	Axis      mgl32.Vec3
	Base      mgl32.Quat

	// Dir points from the craft to the body; R is its length floored at
	// MinDistance. Both are refreshed by Measure.
	Dir mgl32.Vec3
	R   float32
}

// Active reports whether the body is bound to a transform.
func (b *Body) Active() bool { return b.Transform != nil }

// Position is the body's position in its parent frame.
func (b *Body) Position() mgl32.Vec3 { return b.Transform.Position }

// Measure refreshes Dir and R against the craft's world position.
func (b *Body) Measure(craft mgl32.Vec3) {
	b.Dir = b.Transform.Position.Sub(craft)
	b.R = Distance(b.Dir)
}

// RotationAt is the body's orientation at time t: the base rotation followed
// by speed*t degrees about the axis. It depends only on t.
func (b *Body) RotationAt(t float32) mgl32.Quat {
	return b.Base.Mul(mgl32.QuatRotate(mgl32.DegToRad(b.Speed*t), b.Axis))
}

// Spin sets the transform rotation for time t.
func (b *Body) Spin(t float32) {
	b.Transform.Rotation = b.RotationAt(t)
}

// Collides reports whether a craft of the given radius touches the body at the
// last measured distance.
func (b *Body) Collides(craftRadius float32) bool {
	return b.R < craftRadius+b.Radius
}

// Lookup resolves scene transforms by exact name.
type Lookup interface {
	Lookup(name string) *scene.Transform
}

// Registry is the fixed set of body slots.
type Registry struct {
	Bodies [Count]Body
}

// Bind fills every slot from the scene. Slots whose transform is missing stay
// inactive; see Missing. rng drives speed and axis assignment.
func Bind(sc Lookup, rng *rand.Rand) *Registry {
	r := &Registry{}
	for i := range r.Bodies {
		b := &r.Bodies[i]
		if i < scene.HeavyBodies {
			b.Name = scene.HeavyName(i)
			b.Class, b.Mass, b.Radius = Heavy, HeavyMass, HeavyRadius
		} else {
			b.Name = scene.LightName(i - scene.HeavyBodies)
			b.Class, b.Mass, b.Radius = Light, LightMass, LightRadius
		}
		b.Transform = sc.Lookup(b.Name)
		b.Speed = float32(rng.Intn(MaxSpeed-MinSpeed) + MinSpeed)
		b.Axis = randomAxis(rng)
		b.Base = mgl32.QuatIdent()
		if b.Transform != nil {
			b.Base = b.Transform.Rotation
		}
		b.R = initialDistance
	}
	return r
}

func randomAxis(rng *rand.Rand) mgl32.Vec3 {
	v := mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
	if v.Len() < 1e-6 {
		return mgl32.Vec3{0, 1, 0}
	}
	return v.Normalize()
}

// Missing returns the names of unbound slots in registry order.
func (r *Registry) Missing() []string {
	var names []string
	for i := range r.Bodies {
		if !r.Bodies[i].Active() {
			names = append(names, r.Bodies[i].Name)
		}
	}
	return names
}

// ActiveCount returns the number of bound slots.
func (r *Registry) ActiveCount() int {
	n := 0
	for i := range r.Bodies {
		if r.Bodies[i].Active() {
			n++
		}
	}
	return n
}
