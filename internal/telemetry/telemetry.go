// Package telemetry records per-frame flight samples and derives summary
// metrics from them.
package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// Sample is the state after one integrated frame. Dominant is -1 when no body
// is bound; Clearance is the dominant body's R minus both radii.
type Sample struct {
	Time           float32
	Camera         mgl32.Vec3
	OriginDistance float32
	Dominant       int
	DominantName   string
	Clearance      float32
	Crashed        bool
	Escaped        bool
}

// Metric folds samples into one value.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type MaxOriginDistance struct{ max float64 }

func (m *MaxOriginDistance) Name() string { return "max_origin_distance" }
func (m *MaxOriginDistance) Observe(s Sample) {
	m.max = math.Max(m.max, float64(s.OriginDistance))
}
func (m *MaxOriginDistance) Value() float64 { return m.max }
func (m *MaxOriginDistance) Reset()         { m.max = 0 }

// MinClearance is the closest the craft came to the surface of its dominant
// body. It reports +Inf until a sample with a dominant body arrives.
type MinClearance struct {
	min  float64
	seen bool
}

func (m *MinClearance) Name() string { return "min_clearance" }
func (m *MinClearance) Observe(s Sample) {
	if s.Dominant < 0 {
		return
	}
	if !m.seen || float64(s.Clearance) < m.min {
		m.min = float64(s.Clearance)
		m.seen = true
	}
}
func (m *MinClearance) Value() float64 {
	if !m.seen {
		return math.Inf(1)
	}
	return m.min
}
func (m *MinClearance) Reset() { m.min, m.seen = 0, false }

// DominantSwitches counts frames where the dominant body changed.
type DominantSwitches struct {
	count int
	last  int
	seen  bool
}

func (m *DominantSwitches) Name() string { return "dominant_switches" }
func (m *DominantSwitches) Observe(s Sample) {
	if m.seen && s.Dominant != m.last {
		m.count++
	}
	m.last, m.seen = s.Dominant, true
}
func (m *DominantSwitches) Value() float64 { return float64(m.count) }
func (m *DominantSwitches) Reset()         { m.count, m.last, m.seen = 0, 0, false }

// DefaultMetrics returns a fresh set of the flight metrics.
func DefaultMetrics() []Metric {
	return []Metric{&MaxOriginDistance{}, &MinClearance{}, &DominantSwitches{}}
}

// Recorder keeps every sample it is handed and feeds its metrics.
type Recorder struct {
	Samples []Sample
	metrics []Metric
}

func NewRecorder(metrics ...Metric) *Recorder {
	return &Recorder{metrics: metrics}
}

// OnFrame records one frame.
func (r *Recorder) OnFrame(s Sample) {
	r.Samples = append(r.Samples, s)
	for _, m := range r.metrics {
		m.Observe(s)
	}
}

// Metrics returns the current metric values by name.
func (r *Recorder) Metrics() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Reset drops samples and resets metrics.
func (r *Recorder) Reset() {
	r.Samples = r.Samples[:0]
	for _, m := range r.metrics {
		m.Reset()
	}
}

// Series extracts one float series from samples for plotting.
func Series(samples []Sample, f func(Sample) float32) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(f(s))
	}
	return out
}

var csvHeader = []string{"time", "x", "y", "z", "origin_distance", "dominant", "clearance", "crashed", "escaped", "dominant_index"}

// WriteCSV writes samples with a header row.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			formatFloat(s.Time),
			formatFloat(s.Camera[0]),
			formatFloat(s.Camera[1]),
			formatFloat(s.Camera[2]),
			formatFloat(s.OriginDistance),
			s.DominantName,
			formatFloat(s.Clearance),
			strconv.FormatBool(s.Crashed),
			strconv.FormatBool(s.Escaped),
			strconv.Itoa(s.Dominant),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("telemetry: write csv: %w", err)
	}
	return nil
}

// ReadCSV parses samples written by WriteCSV.
func ReadCSV(r io.Reader) ([]Sample, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("telemetry: read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	out := make([]Sample, 0, len(rows)-1)
	for i, row := range rows[1:] {
		s, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("telemetry: row %d: %w", i+1, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func parseRow(row []string) (Sample, error) {
	if len(row) < len(csvHeader) {
		return Sample{}, fmt.Errorf("expected %d fields, got %d", len(csvHeader), len(row))
	}
	var f [6]float32
	for i, col := range []int{0, 1, 2, 3, 4, 6} {
		v, err := strconv.ParseFloat(row[col], 32)
		if err != nil {
			return Sample{}, fmt.Errorf("%s: %w", csvHeader[col], err)
		}
		f[i] = float32(v)
	}
	crashed, err := strconv.ParseBool(row[7])
	if err != nil {
		return Sample{}, fmt.Errorf("crashed: %w", err)
	}
	escaped, err := strconv.ParseBool(row[8])
	if err != nil {
		return Sample{}, fmt.Errorf("escaped: %w", err)
	}
	dom, err := strconv.Atoi(row[9])
	if err != nil {
		return Sample{}, fmt.Errorf("dominant_index: %w", err)
	}
	return Sample{
		Time:           f[0],
		Camera:         mgl32.Vec3{f[1], f[2], f[3]},
		OriginDistance: f[4],
		Dominant:       dom,
		DominantName:   row[5],
		Clearance:      f[5],
		Crashed:        crashed,
		Escaped:        escaped,
	}, nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 6, 32)
}
