package game

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/stardrift/internal/scene"
)

// testScene builds a one-camera scene with the craft carried at the camera
// origin and the named bodies at fixed positions.
func testScene(camPos mgl32.Vec3, bodies map[string]mgl32.Vec3) *scene.Scene {
	sc := scene.New()
	cam := sc.Add(scene.NewTransform(scene.CameraName))
	cam.Position = camPos
	sc.AddCamera(cam, mgl32.DegToRad(60))

	craft := sc.Add(scene.NewTransform(scene.CraftName))
	craft.Parent = cam

	for name, p := range bodies {
		sc.Add(scene.NewTransform(name)).Position = p
	}
	return sc
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}

func finiteQuat(q mgl32.Quat) bool {
	return finite(q.V) && !math.IsNaN(float64(q.W)) && !math.IsInf(float64(q.W), 0)
}

type presenterFunc func(Frame)

func (f presenterFunc) Present(fr Frame) { f(fr) }

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }
