// Package viz plays stardrift in a terminal.
//
// [Renderer] is the game presenter: it projects each frame through the
// session camera onto a braille [Canvas] and draws a HUD beside it with the
// session state, the dominant body, an escape-distance bar and a plot of the
// distance from the origin.
//
// [Model] is a Bubble Tea program that steps the session on a fixed tick and
// turns terminal input into session events. Terminals report key presses
// but never releases, so a key stays down until no repeat has arrived for
// [DefaultHold].
//
// # Key Bindings
//
//	Mouse / arrows - Look around (after grabbing)
//	Click / Space  - Grab mouse look
//	Esc            - Release mouse look
//	W / S          - Move forward / back
//	R              - Restart
//	T              - Cycle color themes
//	P              - Save an SVG screenshot
//	?              - Show help overlay
//	Q              - Quit
package viz
