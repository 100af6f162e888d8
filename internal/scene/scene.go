// Package scene holds the named transforms and the camera the game loop
// operates on.
//
// A [Scene] is a flat, stable collection of [Transform] pointers; parent links
// point into the same collection. The game session keeps non-owning references
// into it, so the scene must outlive any session built on it and the session
// never removes transforms.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a named node with a local pose relative to its parent.
type Transform struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
}

// NewTransform returns an identity transform with the given name.
func NewTransform(name string) *Transform {
	return &Transform{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// LocalToParent returns T * R * S.
func (t *Transform) LocalToParent() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	sc := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return tr.Mul4(t.Rotation.Mat4()).Mul4(sc)
}

// LocalToWorld composes LocalToParent up the parent chain.
func (t *Transform) LocalToWorld() mgl32.Mat4 {
	m := t.LocalToParent()
	for p := t.Parent; p != nil; p = p.Parent {
		m = p.LocalToParent().Mul4(m)
	}
	return m
}

// WorldPosition is the transform's origin in world space.
func (t *Transform) WorldPosition() mgl32.Vec3 {
	return t.LocalToWorld().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

// Camera is a perspective camera attached to a transform.
type Camera struct {
	Transform *Transform
	Fovy      float32 // radians
	Aspect    float32
	Near      float32
}

// Scene is the loaded set of transforms and cameras.
type Scene struct {
	Transforms []*Transform
	cameras    []*Camera
}

func New() *Scene {
	return &Scene{}
}

// Add appends a transform and returns it.
func (s *Scene) Add(t *Transform) *Transform {
	s.Transforms = append(s.Transforms, t)
	return t
}

// AddCamera attaches a camera to t. t should already be part of the scene.
func (s *Scene) AddCamera(t *Transform, fovy float32) *Camera {
	c := &Camera{Transform: t, Fovy: fovy, Aspect: 1, Near: 0.01}
	s.cameras = append(s.cameras, c)
	return c
}

// Lookup returns the first transform with the exact name, or nil.
func (s *Scene) Lookup(name string) *Transform {
	for _, t := range s.Transforms {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Cameras returns the scene cameras in insertion order.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// Clone deep-copies the scene, remapping parent and camera links into the copy.
func (s *Scene) Clone() *Scene {
	out := &Scene{Transforms: make([]*Transform, len(s.Transforms))}
	remap := make(map[*Transform]*Transform, len(s.Transforms))
	for i, t := range s.Transforms {
		cp := *t
		out.Transforms[i] = &cp
		remap[t] = &cp
	}
	for _, t := range out.Transforms {
		if t.Parent != nil {
			t.Parent = remap[t.Parent]
		}
	}
	for _, c := range s.cameras {
		cp := *c
		cp.Transform = remap[c.Transform]
		out.cameras = append(out.cameras, &cp)
	}
	return out
}
