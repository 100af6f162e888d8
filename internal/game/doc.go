// Package game runs the stardrift gameplay loop.
//
// A [Session] binds to a scene once, then is driven one frame at a time:
//
//	for each input event: sess.HandleEvent(evt, win)
//	sess.Update(elapsed)
//	sess.Draw(drawable)
//
// Each [Session.Update] pulls the camera toward the single dominant body,
// banks it toward that body, applies W/S movement and checks for a crash
// against any body or an escape beyond [EscapeDistance]. Crash and escape are
// sticky until [Session.Restart] (or the R key).
//
// # Thread Safety
//
// Sessions are NOT thread-safe. The design assumes one logical thread of
// control delivering events, updates and draws in order.
package game
