package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// G is the game's gravitational constant, not a physical one.
const G = 6.67

const (
	// MinDistance floors every craft-to-body distance.
	MinDistance = 1.0
	// ScoreCeiling caps the pull used for dominant-body scoring.
	ScoreCeiling = 120.0
	// PullCeiling caps the pull that moves the camera.
	PullCeiling = 15.0
)

// Distance returns |dir| floored at MinDistance.
func Distance(dir mgl32.Vec3) float32 {
	return max(dir.Len(), MinDistance)
}

// Pull is G*M/r^2 capped at ceiling.
func Pull(mass, r, ceiling float32) float32 {
	return min(G*mass/r/r, ceiling)
}

// Score ranks b for dominant-body selection. The falloff uses the craft
// distance R while the scale uses the body-to-camera vector.
func Score(b *Body, camera mgl32.Vec3) float32 {
	return Pull(b.Mass, b.R, ScoreCeiling) * b.Position().Sub(camera).Len()
}

// Acceleration is the capped pull of b on the camera, pointing at b and
// scaled by the camera distance.
func Acceleration(b *Body, camera mgl32.Vec3) mgl32.Vec3 {
	return b.Position().Sub(camera).Mul(Pull(b.Mass, b.R, PullCeiling))
}

// Dominant returns the index of the active body with the strictly largest
// score; the earliest slot wins ties. When no score is positive it falls back
// to prev if that slot is active, then to the first active slot. It returns -1
// only when no slot is active.
func (r *Registry) Dominant(camera mgl32.Vec3, prev int) int {
	best, bestScore := -1, float32(0)
	first := -1
	for i := range r.Bodies {
		b := &r.Bodies[i]
		if !b.Active() {
			continue
		}
		if first < 0 {
			first = i
		}
		if s := Score(b, camera); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best >= 0 {
		return best
	}
	if prev >= 0 && prev < Count && r.Bodies[prev].Active() {
		return prev
	}
	return first
}
