// Package input tracks per-frame button state and mouse-look capture from a
// stream of discrete events.
package input

// Key identifies the keys the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyA
	KeyD
	KeyW
	KeyS
	KeyR
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyA:
		return "a"
	case KeyD:
		return "d"
	case KeyW:
		return "w"
	case KeyS:
		return "s"
	case KeyR:
		return "r"
	}
	return "none"
}

// ParseKey maps a key name ("w", "escape", ...) to a Key. Unknown names map to
// KeyNone.
func ParseKey(name string) Key {
	for k := KeyEscape; k <= KeyR; k++ {
		if k.String() == name {
			return k
		}
	}
	return KeyNone
}

type EventType int

const (
	KeyDown EventType = iota
	KeyUp
	MouseMotion
	MouseButtonDown
)

// Event is one discrete event from the input source. XRel and YRel carry the
// relative motion for MouseMotion.
type Event struct {
	Type EventType
	Key  Key
	XRel float32
	YRel float32
}

// WindowSize is the size, in pixels or cells, of the surface the events refer to.
type WindowSize struct {
	Width, Height int
}

// Button is the state of one tracked key. Downs counts press edges since the
// last frame boundary.
type Button struct {
	Downs   int
	Pressed bool
}

// Tracker holds the five game buttons and the mouse-look capture flag.
type Tracker struct {
	Left, Right, Up, Down, Restart Button
	captured                       bool
}

func (t *Tracker) button(k Key) *Button {
	switch k {
	case KeyA:
		return &t.Left
	case KeyD:
		return &t.Right
	case KeyW:
		return &t.Up
	case KeyS:
		return &t.Down
	case KeyR:
		return &t.Restart
	}
	return nil
}

// Press records a key-down. It reports whether k is a tracked button.
func (t *Tracker) Press(k Key) bool {
	b := t.button(k)
	if b == nil {
		return false
	}
	b.Downs++
	b.Pressed = true
	return true
}

// Release records a key-up. It reports whether k is a tracked button.
func (t *Tracker) Release(k Key) bool {
	b := t.button(k)
	if b == nil {
		return false
	}
	b.Pressed = false
	return true
}

// EndFrame zeroes every edge counter.
func (t *Tracker) EndFrame() {
	t.Left.Downs = 0
	t.Right.Downs = 0
	t.Up.Downs = 0
	t.Down.Downs = 0
	t.Restart.Downs = 0
}

// Captured reports whether relative mouse-look is on.
func (t *Tracker) Captured() bool { return t.captured }

// Capture turns mouse-look on. It reports false if it was already on.
func (t *Tracker) Capture() bool {
	if t.captured {
		return false
	}
	t.captured = true
	return true
}

// Uncapture turns mouse-look off.
func (t *Tracker) Uncapture() { t.captured = false }

// Move combines the directional buttons into a 2D move, x from left/right and
// y from down/up. Opposite buttons cancel.
func (t *Tracker) Move() (x, y float32) {
	if t.Left.Pressed && !t.Right.Pressed {
		x = -1
	}
	if !t.Left.Pressed && t.Right.Pressed {
		x = 1
	}
	if t.Down.Pressed && !t.Up.Pressed {
		y = -1
	}
	if !t.Down.Pressed && t.Up.Pressed {
		y = 1
	}
	return x, y
}
