// Package physics holds the gravitating bodies and the gravity rules the game
// loop applies to them.
//
// The body set is a fixed array of [Count] slots bound by name to scene
// transforms:
//
//   - slots 0..4: [Heavy] bodies "Mars.001".."Mars.005"
//   - slots 5..24: [Light] bodies "Stars.001".."Stars.020"
//
// Only one body, the dominant one, moves the camera each frame:
//
//	for i := range reg.Bodies {
//	    reg.Bodies[i].Measure(craftPos)
//	}
//	dom := reg.Dominant(cameraPos, prev)
//	a := physics.Acceleration(&reg.Bodies[dom], cameraPos)
//
// # Clamping
//
// Distances are floored at [MinDistance] and pulls are capped at
// [ScoreCeiling] (selection) and [PullCeiling] (translation), so no frame can
// divide by zero or blow up near a body.
package physics
