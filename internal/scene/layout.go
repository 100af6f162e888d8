package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Names used by the stars layout.
const (
	CraftName  = "spacecraft"
	CameraName = "Camera"

	HeavyBodies = 5
	LightBodies = 20
)

// HeavyName returns the transform name of heavy body i (0-based): "Mars.001".
func HeavyName(i int) string { return fmt.Sprintf("Mars.%03d", i+1) }

// LightName returns the transform name of light body i (0-based): "Stars.001".
func LightName(i int) string { return fmt.Sprintf("Stars.%03d", i+1) }

// Layout knobs for Generate.
const (
	cameraStart  = 50.0
	heavyRingMin = 60.0
	heavyRingMax = 110.0
	lightMax     = 150.0
	startClear   = 25.0
)

// Generate builds the default stars layout: a camera 50 units from the
// origin looking down -Z, the craft carried just in front of it, five heavy
// bodies on a loose ring and twenty light bodies scattered around, none of
// them closer than a safe margin to the start position.
func Generate(rng *rand.Rand) *Scene {
	s := New()

	cam := s.Add(NewTransform(CameraName))
	cam.Position = mgl32.Vec3{0, 0, cameraStart}
	s.AddCamera(cam, mgl32.DegToRad(60))

	craft := s.Add(NewTransform(CraftName))
	craft.Parent = cam
	craft.Position = mgl32.Vec3{0, -1.2, -4}

	start := cam.Position
	for i := 0; i < HeavyBodies; i++ {
		var p mgl32.Vec3
		for {
			angle := 2*math.Pi*float64(i)/HeavyBodies + rng.Float64()*0.4
			radius := heavyRingMin + rng.Float64()*(heavyRingMax-heavyRingMin)
			p = mgl32.Vec3{
				float32(radius * math.Cos(angle)),
				float32((rng.Float64() - 0.5) * 30),
				float32(radius * math.Sin(angle)),
			}
			if p.Sub(start).Len() > startClear+15 {
				break
			}
		}
		t := s.Add(NewTransform(HeavyName(i)))
		t.Position = p
		t.Scale = mgl32.Vec3{15, 15, 15}
	}
	for i := 0; i < LightBodies; i++ {
		var p mgl32.Vec3
		for {
			p = mgl32.Vec3{
				float32((rng.Float64()*2 - 1) * lightMax),
				float32((rng.Float64()*2 - 1) * lightMax * 0.3),
				float32((rng.Float64()*2 - 1) * lightMax),
			}
			if p.Sub(start).Len() > startClear && p.Len() < lightMax {
				break
			}
		}
		t := s.Add(NewTransform(LightName(i)))
		t.Position = p
		t.Scale = mgl32.Vec3{2.5, 2.5, 2.5}
	}
	return s
}
