package telemetry

import (
	"bytes"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMaxOriginDistance(t *testing.T) {
	m := &MaxOriginDistance{}
	for _, d := range []float32{50, 80, 60} {
		m.Observe(Sample{OriginDistance: d})
	}
	if m.Value() != 80 {
		t.Errorf("expected 80, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("reset did not clear")
	}
}

func TestMinClearance(t *testing.T) {
	m := &MinClearance{}
	if !math.IsInf(m.Value(), 1) {
		t.Errorf("expected +Inf before samples, got %f", m.Value())
	}

	m.Observe(Sample{Dominant: -1, Clearance: -5})
	if !math.IsInf(m.Value(), 1) {
		t.Error("samples without a dominant body must be ignored")
	}

	m.Observe(Sample{Dominant: 0, Clearance: 12})
	m.Observe(Sample{Dominant: 0, Clearance: 4})
	m.Observe(Sample{Dominant: 1, Clearance: 9})
	if m.Value() != 4 {
		t.Errorf("expected 4, got %f", m.Value())
	}
}

func TestDominantSwitches(t *testing.T) {
	m := &DominantSwitches{}
	for _, d := range []int{2, 2, 3, 3, 2, 7} {
		m.Observe(Sample{Dominant: d})
	}
	if m.Value() != 3 {
		t.Errorf("expected 3 switches, got %f", m.Value())
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(DefaultMetrics()...)
	r.OnFrame(Sample{Time: 0.1, OriginDistance: 50, Dominant: 0, Clearance: 30})
	r.OnFrame(Sample{Time: 0.2, OriginDistance: 49, Dominant: 1, Clearance: 20})

	if len(r.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(r.Samples))
	}
	got := r.Metrics()
	if got["max_origin_distance"] != 50 || got["min_clearance"] != 20 || got["dominant_switches"] != 1 {
		t.Errorf("metrics = %v", got)
	}

	r.Reset()
	if len(r.Samples) != 0 || r.Metrics()["dominant_switches"] != 0 {
		t.Error("reset incomplete")
	}
}

func TestSeries(t *testing.T) {
	samples := []Sample{{Time: 1}, {Time: 2}}
	got := Series(samples, func(s Sample) float32 { return s.Time * 2 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("Series = %v", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	samples := []Sample{
		{Time: 0.1, Camera: mgl32.Vec3{1, 2, 3}, OriginDistance: 3.74, DominantName: "Mars.001", Clearance: 5},
		{Time: 0.2, Crashed: true},
	}
	if err := WriteCSV(&buf, samples); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][5] != "Mars.001" {
		t.Errorf("dominant column = %q", rows[1][5])
	}
	if rows[2][7] != "true" {
		t.Errorf("crashed column = %q", rows[2][7])
	}
}

func TestReadCSV(t *testing.T) {
	var buf bytes.Buffer
	in := []Sample{
		{Time: 0.5, Camera: mgl32.Vec3{1, -2, 3}, OriginDistance: 3.74, Dominant: 4, DominantName: "Mars.005", Clearance: 12.5},
		{Time: 0.6, Dominant: -1, Escaped: true},
	}
	if err := WriteCSV(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(out))
	}
	if out[0].Dominant != 4 || out[0].DominantName != "Mars.005" || out[0].Camera != in[0].Camera {
		t.Errorf("first sample %+v", out[0])
	}
	if out[1].Dominant != -1 || !out[1].Escaped || out[1].Crashed {
		t.Errorf("second sample %+v", out[1])
	}

	if _, err := ReadCSV(strings.NewReader("time,x\n1,2\n")); err == nil {
		t.Error("expected error for short rows")
	}
}
