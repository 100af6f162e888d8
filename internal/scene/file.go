package scene

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type fileTransform struct {
	Name     string     `yaml:"name"`
	Parent   string     `yaml:"parent,omitempty"`
	Position [3]float32 `yaml:"position,flow"`
	Rotation [4]float32 `yaml:"rotation,flow"` // w, x, y, z
	Scale    [3]float32 `yaml:"scale,flow"`
}

type fileCamera struct {
	Transform string  `yaml:"transform"`
	Fovy      float32 `yaml:"fovy"` // degrees
	Near      float32 `yaml:"near"`
}

type fileScene struct {
	Transforms []fileTransform `yaml:"transforms"`
	Cameras    []fileCamera    `yaml:"cameras"`
}

// Load reads a YAML scene description.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML scene. Parents and camera transforms are resolved by
// name; an unknown name is an error.
func Parse(data []byte) (*Scene, error) {
	var fs fileScene
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}

	s := New()
	byName := make(map[string]*Transform, len(fs.Transforms))
	for _, ft := range fs.Transforms {
		t := NewTransform(ft.Name)
		t.Position = mgl32.Vec3(ft.Position)
		if ft.Rotation != [4]float32{} {
			t.Rotation = mgl32.Quat{W: ft.Rotation[0], V: mgl32.Vec3{ft.Rotation[1], ft.Rotation[2], ft.Rotation[3]}}.Normalize()
		}
		if ft.Scale != [3]float32{} {
			t.Scale = mgl32.Vec3(ft.Scale)
		}
		s.Add(t)
		if _, dup := byName[ft.Name]; !dup {
			byName[ft.Name] = t
		}
	}
	for i, ft := range fs.Transforms {
		if ft.Parent == "" {
			continue
		}
		p, ok := byName[ft.Parent]
		if !ok {
			return nil, fmt.Errorf("scene: transform %q: unknown parent %q", ft.Name, ft.Parent)
		}
		s.Transforms[i].Parent = p
	}
	for _, fc := range fs.Cameras {
		t, ok := byName[fc.Transform]
		if !ok {
			return nil, fmt.Errorf("scene: camera: unknown transform %q", fc.Transform)
		}
		c := s.AddCamera(t, mgl32.DegToRad(fc.Fovy))
		if fc.Near > 0 {
			c.Near = fc.Near
		}
	}
	return s, nil
}

// Marshal encodes s in the format Parse reads.
func Marshal(s *Scene) ([]byte, error) {
	var fs fileScene
	for _, t := range s.Transforms {
		ft := fileTransform{
			Name:     t.Name,
			Position: [3]float32(t.Position),
			Rotation: [4]float32{t.Rotation.W, t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2]},
			Scale:    [3]float32(t.Scale),
		}
		if t.Parent != nil {
			ft.Parent = t.Parent.Name
		}
		fs.Transforms = append(fs.Transforms, ft)
	}
	for _, c := range s.cameras {
		fs.Cameras = append(fs.Cameras, fileCamera{
			Transform: c.Transform.Name,
			Fovy:      mgl32.RadToDeg(c.Fovy),
			Near:      c.Near,
		})
	}
	return yaml.Marshal(&fs)
}

// Save writes s to path.
func Save(path string, s *Scene) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
