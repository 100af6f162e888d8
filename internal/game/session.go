package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/san-kum/stardrift/internal/input"
	"github.com/san-kum/stardrift/internal/physics"
	"github.com/san-kum/stardrift/internal/scene"
	"github.com/san-kum/stardrift/internal/telemetry"
)

// Gameplay constants.
const (
	CraftCollisionRadius = 1.0
	EscapeDistance       = 190.0
	PlayerSpeed          = 30.0
	BankGain             = 4.0

	bobAmplitude = 0.2
	bobRate      = 2.0
)

// SceneProvider is the loaded scene a session binds to. The session keeps
// references into it and mutates the transforms it binds, so the scene must
// outlive the session.
type SceneProvider interface {
	Lookup(name string) *scene.Transform
	Cameras() []*scene.Camera
}

// Observer receives one sample per integrated frame.
type Observer interface {
	OnFrame(s telemetry.Sample)
}

// State is the session outcome. Crash and escape are tracked independently.
type State int

const (
	Flying State = iota
	Crashed
	Escaped
	CrashedEscaped
)

func (s State) String() string {
	switch s {
	case Crashed:
		return "crashed"
	case Escaped:
		return "escaped"
	case CrashedEscaped:
		return "crashed+escaped"
	}
	return "flying"
}

type options struct {
	rng       *rand.Rand
	log       zerolog.Logger
	strict    bool
	presenter Presenter
	observers []Observer
}

type Option func(*options)

// WithRand sets the source for body speeds and axes.
func WithRand(rng *rand.Rand) Option { return func(o *options) { o.rng = rng } }

// WithSeed seeds a private source for body speeds and axes.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

func WithLogger(log zerolog.Logger) Option { return func(o *options) { o.log = log } }

// WithStrict makes a missing body transform a construction error instead of
// an inactive slot.
func WithStrict(strict bool) Option { return func(o *options) { o.strict = strict } }

func WithPresenter(p Presenter) Option { return func(o *options) { o.presenter = p } }

func WithObserver(obs Observer) Option {
	return func(o *options) { o.observers = append(o.observers, obs) }
}

// Session is one play-through's simulation state. It is not safe for
// concurrent use; events, Update and Draw must come from one goroutine.
type Session struct {
	log zerolog.Logger

	bodies      *physics.Registry
	craft       *scene.Transform
	craftRest   mgl32.Vec3
	craftRadius float32

	camera  *scene.Camera
	forward mgl32.Vec3
	start   mgl32.Vec3

	input    input.Tracker
	crash    bool
	escape   bool
	time     float32
	dominant int

	presenter Presenter
	observers []Observer
}

// New binds a session to sc. It fails if sc does not have exactly one camera
// or lacks the craft, and in strict mode if any body is missing.
func New(sc SceneProvider, opts ...Option) (*Session, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cams := sc.Cameras()
	if len(cams) != 1 {
		return nil, &CameraCountError{Count: len(cams)}
	}
	craft := sc.Lookup(scene.CraftName)
	if craft == nil {
		return nil, fmt.Errorf("%w: %q", ErrCraftMissing, scene.CraftName)
	}

	reg := physics.Bind(sc, o.rng)
	if missing := reg.Missing(); len(missing) > 0 {
		if o.strict {
			return nil, &MissingBodiesError{Names: missing}
		}
		o.log.Warn().Strs("bodies", missing).Msg("body transforms not found, slots inactive")
	}

	cam := cams[0]
	s := &Session{
		log:         o.log,
		bodies:      reg,
		craft:       craft,
		craftRest:   craft.Position,
		craftRadius: CraftCollisionRadius,
		camera:      cam,
		forward:     mgl32.Vec3{1, 0, 0},
		start:       cam.Transform.Position,
		dominant:    -1,
		presenter:   o.presenter,
		observers:   o.observers,
	}
	s.log.Info().
		Int("bodies", reg.ActiveCount()).
		Interface("start", s.start).
		Msg("session ready")
	return s, nil
}

// Restart clears both terminal flags and puts the camera back at its start
// position. Time, body rotations and the craft bob keep running.
func (s *Session) Restart() {
	if s.crash || s.escape {
		s.log.Info().Str("from", s.State().String()).Float32("time", s.time).Msg("restart")
	}
	s.crash = false
	s.escape = false
	s.camera.Transform.Position = s.start
}

func (s *Session) State() State {
	switch {
	case s.crash && s.escape:
		return CrashedEscaped
	case s.crash:
		return Crashed
	case s.escape:
		return Escaped
	}
	return Flying
}

func (s *Session) Crashed() bool { return s.crash }
func (s *Session) Escaped() bool { return s.escape }

// Time is the accumulated session time in seconds.
func (s *Session) Time() float32 { return s.time }

func (s *Session) Camera() *scene.Camera { return s.camera }

// Forward is the cached forward vector used for banking.
func (s *Session) Forward() mgl32.Vec3 { return s.forward }

func (s *Session) StartPosition() mgl32.Vec3 { return s.start }

func (s *Session) Craft() *scene.Transform { return s.craft }

func (s *Session) Bodies() *physics.Registry { return s.bodies }

// Input exposes the button state for inspection.
func (s *Session) Input() *input.Tracker { return &s.input }

// Dominant returns the body selected in the last integrated frame, or nil.
func (s *Session) Dominant() *physics.Body {
	if s.dominant < 0 {
		return nil
	}
	return &s.bodies.Bodies[s.dominant]
}
