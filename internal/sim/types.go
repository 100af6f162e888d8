package sim

import (
	"fmt"
	"sort"

	"github.com/san-kum/stardrift/internal/config"
	"github.com/san-kum/stardrift/internal/game"
	"github.com/san-kum/stardrift/internal/input"
	"github.com/san-kum/stardrift/internal/telemetry"
)

// DefaultWindow is the drawable size used when a Config leaves Window unset.
var DefaultWindow = input.WindowSize{Width: 800, Height: 600}

// Event is an input event delivered once session time reaches At.
type Event struct {
	At    float64
	Event input.Event
}

type Config struct {
	Dt       float64
	Duration float64
	// StopOnEnd stops the run at the first frame that ends crashed or escaped.
	StopOnEnd bool
	Script    []Event
	Window    input.WindowSize
}

type Result struct {
	Seed    int64
	Frames  int
	Time    float32
	State   game.State
	Samples []telemetry.Sample
	Metrics map[string]float64
}

// RunError reports a run that was cut short.
type RunError struct {
	Frame int
	Time  float32
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("sim: stopped at frame %d (t=%.3f): %v", e.Frame, e.Time, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// FromConfig builds a run configuration from the file configuration. The
// script is sorted by time; key names were checked by config.Validate.
func FromConfig(c *config.Config) Config {
	cfg := Config{
		Dt:        c.Sim.Dt,
		Duration:  c.Sim.Duration,
		StopOnEnd: c.Sim.StopOnEnd,
	}
	for _, a := range c.Script {
		typ := input.KeyUp
		if a.Down {
			typ = input.KeyDown
		}
		cfg.Script = append(cfg.Script, Event{
			At:    a.At,
			Event: input.Event{Type: typ, Key: input.ParseKey(a.Key)},
		})
	}
	sortScript(cfg.Script)
	return cfg
}

func sortScript(s []Event) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].At < s[j].At })
}
