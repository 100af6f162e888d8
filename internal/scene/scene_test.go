package scene

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWorldPosition_FollowsParent(t *testing.T) {
	parent := NewTransform("parent")
	parent.Position = mgl32.Vec3{10, 0, 0}
	parent.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	child := NewTransform("child")
	child.Parent = parent
	child.Position = mgl32.Vec3{0, 0, -4}

	got := child.WorldPosition()
	// 90 degrees about +Y turns -Z into -X.
	want := mgl32.Vec3{6, 0, 0}
	if got.Sub(want).Len() > 1e-4 {
		t.Errorf("WorldPosition() = %v, want %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	s := New()
	a := s.Add(NewTransform("a"))
	s.Add(NewTransform("b"))

	if got := s.Lookup("a"); got != a {
		t.Errorf("Lookup(a) = %p, want %p", got, a)
	}
	if got := s.Lookup("missing"); got != nil {
		t.Errorf("Lookup(missing) = %v, want nil", got)
	}
}

func TestClone_RemapsLinks(t *testing.T) {
	s := Generate(rand.New(rand.NewSource(1)))
	c := s.Clone()

	cam := c.Cameras()[0]
	if cam.Transform == s.Cameras()[0].Transform {
		t.Fatal("camera transform shared with source scene")
	}
	if cam.Transform != c.Lookup(CameraName) {
		t.Error("camera not bound to cloned transform")
	}
	if c.Lookup(CraftName).Parent != c.Lookup(CameraName) {
		t.Error("craft parent not remapped")
	}

	c.Lookup(CameraName).Position = mgl32.Vec3{}
	if s.Lookup(CameraName).Position == (mgl32.Vec3{}) {
		t.Error("mutating clone changed source")
	}
}

func TestGenerate_Names(t *testing.T) {
	s := Generate(rand.New(rand.NewSource(7)))

	if n := len(s.Cameras()); n != 1 {
		t.Fatalf("expected 1 camera, got %d", n)
	}
	if s.Lookup(CraftName) == nil {
		t.Error("craft missing")
	}
	for i := 0; i < HeavyBodies; i++ {
		if s.Lookup(HeavyName(i)) == nil {
			t.Errorf("missing %s", HeavyName(i))
		}
	}
	for i := 0; i < LightBodies; i++ {
		if s.Lookup(LightName(i)) == nil {
			t.Errorf("missing %s", LightName(i))
		}
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{HeavyName(0), "Mars.001"},
		{HeavyName(4), "Mars.005"},
		{LightName(0), "Stars.001"},
		{LightName(9), "Stars.010"},
		{LightName(19), "Stars.020"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %s, want %s", tt.got, tt.want)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	src := Generate(rand.New(rand.NewSource(3)))
	data, err := Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got.Transforms) != len(src.Transforms) {
		t.Fatalf("expected %d transforms, got %d", len(src.Transforms), len(got.Transforms))
	}
	if got.Lookup(CraftName).Parent != got.Lookup(CameraName) {
		t.Error("parent link lost")
	}
	cam := got.Cameras()[0]
	if diff := cam.Fovy - src.Cameras()[0].Fovy; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("fovy = %f, want %f", cam.Fovy, src.Cameras()[0].Fovy)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "transforms: ["},
		{"unknown parent", "transforms:\n  - name: a\n    parent: nope\n"},
		{"unknown camera", "transforms:\n  - name: a\ncameras:\n  - transform: b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte("transforms:\n  - name: a\n    position: [1, 2, 3]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	a := s.Lookup("a")
	if a.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("scale = %v, want unit", a.Scale)
	}
	if a.Rotation != mgl32.QuatIdent() {
		t.Errorf("rotation = %v, want identity", a.Rotation)
	}
}
