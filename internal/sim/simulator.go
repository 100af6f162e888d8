package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/stardrift/internal/game"
	"github.com/san-kum/stardrift/internal/telemetry"
)

// Runner drives one session headlessly at a fixed time step.
type Runner struct {
	sess *game.Session
	rec  *telemetry.Recorder
}

// New binds a session to sc with a telemetry recorder attached. opts are
// passed to game.New after the recorder.
func New(sc game.SceneProvider, opts ...game.Option) (*Runner, error) {
	rec := telemetry.NewRecorder(telemetry.DefaultMetrics()...)
	opts = append([]game.Option{game.WithObserver(rec)}, opts...)
	sess, err := game.New(sc, opts...)
	if err != nil {
		return nil, err
	}
	return &Runner{sess: sess, rec: rec}, nil
}

func (r *Runner) Session() *game.Session { return r.sess }

func (r *Runner) Recorder() *telemetry.Recorder { return r.rec }

// Run steps the session round(Duration/Dt) frames. Script events whose time has been
// reached are delivered before each frame. On cancellation the partial result
// is returned with a *RunError.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	win := cfg.Window
	if win.Width <= 0 || win.Height <= 0 {
		win = DefaultWindow
	}
	script := append([]Event(nil), cfg.Script...)
	sortScript(script)

	r.rec.Reset()
	frames := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{}
	next := 0

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			r.finish(result)
			return result, &RunError{Frame: i, Time: r.sess.Time(), Err: ctx.Err()}
		default:
		}

		now := float64(r.sess.Time())
		for next < len(script) && script[next].At <= now {
			r.sess.HandleEvent(script[next].Event, win)
			next++
		}

		r.sess.Update(float32(cfg.Dt))
		r.sess.Draw(win)
		result.Frames++

		if cfg.StopOnEnd && r.sess.State() != game.Flying {
			break
		}
	}

	r.finish(result)
	return result, nil
}

func (r *Runner) finish(result *Result) {
	result.Time = r.sess.Time()
	result.State = r.sess.State()
	result.Samples = append([]telemetry.Sample(nil), r.rec.Samples...)
	result.Metrics = r.rec.Metrics()
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	for i, e := range cfg.Script {
		if e.At < 0 {
			return fmt.Errorf("script[%d]: negative time %f", i, e.At)
		}
	}
	return nil
}
