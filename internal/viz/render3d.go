package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/stardrift/internal/game"
)

const (
	farPlane  = 1000
	minNear   = 0.01
	maxRadius = 4096
)

// Projector maps world positions onto a canvas of w x h dots through the
// camera of one frame.
type Projector struct {
	view, proj mgl32.Mat4
	w, h       int
	near       float32
	tanHalf    float32
}

func NewProjector(f game.Frame, w, h int) Projector {
	aspect := f.Aspect
	if aspect <= 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	if aspect <= 0 {
		aspect = 1
	}
	near := f.Near
	if near <= 0 {
		near = minNear
	}
	fovy := f.Fovy
	if fovy <= 0 {
		fovy = mgl32.DegToRad(60)
	}
	return Projector{
		view:    f.CameraWorld.Inv(),
		proj:    mgl32.Perspective(fovy, aspect, near, farPlane),
		w:       w,
		h:       h,
		near:    near,
		tanHalf: float32(math.Tan(float64(fovy / 2))),
	}
}

// Project returns the dot coordinates and view depth of p. front is false for
// points at or behind the near plane; x and y are then meaningless. Points in
// front may still land off the canvas.
func (p Projector) Project(world mgl32.Vec3) (x, y int, depth float32, front bool) {
	v := p.view.Mul4x1(world.Vec4(1))
	depth = -v.Z()
	if depth <= p.near {
		return 0, 0, depth, false
	}
	clip := p.proj.Mul4x1(v)
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	x = int((nx + 1) / 2 * float32(p.w))
	y = int((1 - ny) / 2 * float32(p.h))
	return x, y, depth, true
}

// Radius is the on-canvas radius, in dots, of a sphere of radius r at depth.
func (p Projector) Radius(r, depth float32) int {
	if depth <= 0 || p.tanHalf <= 0 {
		return 0
	}
	px := r / (depth * p.tanHalf) * float32(p.h) / 2
	if px > maxRadius {
		return maxRadius
	}
	return int(px)
}

// drawScene rasterizes the bodies and the craft of f onto c.
func drawScene(c *Canvas, f game.Frame) {
	w, h := c.Dots()
	if w == 0 || h == 0 {
		return
	}
	p := NewProjector(f, w, h)

	for _, b := range f.Bodies {
		x, y, depth, front := p.Project(b.Position)
		if !front {
			continue
		}
		r := p.Radius(b.Radius, depth)
		c.DrawCircle(x, y, r)
		if b.Dominant {
			c.DrawCircle(x, y, r+2)
		}
	}

	if x, y, _, front := p.Project(f.Craft); front {
		c.DrawLine(x-2, y, x+2, y)
		c.DrawLine(x, y-1, x, y+1)
	}
}
