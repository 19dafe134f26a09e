// Package config loads the window, input and scene description from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"Waystation/internal/input"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Debug    bool           `yaml:"debug"`
	LogFile  string         `yaml:"log_file"`
	Window   Window         `yaml:"window"`
	Bindings input.Bindings `yaml:"bindings"`
	World    World          `yaml:"world"`
	Scene    Scene          `yaml:"scene"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
}

// World describes the collision geometry the player moves in.
type World struct {
	FloorY  float32 `yaml:"floor_y"`
	Gravity Vec3    `yaml:"gravity"`
	Walls   []Wall  `yaml:"walls"`
}

// Wall is a segment in the XZ plane.
type Wall struct {
	From      Vec2    `yaml:"from"`
	To        Vec2    `yaml:"to"`
	Thickness float32 `yaml:"thickness"`
}

type Scene struct {
	Objects     []Object     `yaml:"objects"`
	Connections []Connection `yaml:"connections"`
}

// Object is one scene object driven by a script of the given kind. Params is
// decoded by the script's constructor.
type Object struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Position Vec3      `yaml:"position"`
	Rotation Vec3      `yaml:"rotation"` // euler angles in degrees
	Params   yaml.Node `yaml:"params"`
}

// Connection wires a signal of one object to a slot of another.
type Connection struct {
	From   string `yaml:"from"`
	Signal string `yaml:"signal"`
	To     string `yaml:"to"`
	Slot   string `yaml:"slot"`
}

func (c Connection) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", c.From, c.Signal, c.To, c.Slot)
}

// Vec3 decodes from a three element YAML sequence.
type Vec3 mgl32.Vec3

func (v *Vec3) UnmarshalYAML(n *yaml.Node) error {
	var raw []float32
	if err := n.Decode(&raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("line %d: want 3 components, got %d", n.Line, len(raw))
	}
	copy(v[:], raw)
	return nil
}

func (v Vec3) MarshalYAML() (interface{}, error) {
	return []float32{v[0], v[1], v[2]}, nil
}

func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

// Vec2 decodes from a two element YAML sequence.
type Vec2 mgl32.Vec2

func (v *Vec2) UnmarshalYAML(n *yaml.Node) error {
	var raw []float32
	if err := n.Decode(&raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("line %d: want 2 components, got %d", n.Line, len(raw))
	}
	copy(v[:], raw)
	return nil
}

func (v Vec2) MarshalYAML() (interface{}, error) {
	return []float32{v[0], v[1]}, nil
}

func (v Vec2) Vec() mgl32.Vec2 {
	return mgl32.Vec2(v)
}

// Load reads path over the defaults and validates the result. A scene in the
// file replaces the default scene as a whole; bindings override per action.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var probe struct {
		Scene *yaml.Node `yaml:"scene"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	cfg := Default()
	if probe.Scene != nil {
		cfg.Scene = Scene{}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find returns the scene object with the given name.
func (c *Config) Find(name string) (Object, bool) {
	for _, o := range c.Scene.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return Object{}, false
}

// Validate checks the whole configuration including every object's params.
func (c *Config) Validate() error {
	var problems []string
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	for i, w := range c.World.Walls {
		if w.From == w.To {
			problems = append(problems, fmt.Sprintf("wall %d has zero length", i))
		}
	}

	names := make(map[string]string, len(c.Scene.Objects))
	for _, o := range c.Scene.Objects {
		switch {
		case o.Name == "":
			problems = append(problems, "object without a name")
			continue
		case names[o.Name] != "":
			problems = append(problems, fmt.Sprintf("duplicate object %q", o.Name))
			continue
		}
		names[o.Name] = o.Kind

		params, ok := DefaultParams(o.Kind)
		if !ok {
			problems = append(problems, fmt.Sprintf("object %q has unknown kind %q", o.Name, o.Kind))
			continue
		}
		if err := o.Decode(params); err != nil {
			problems = append(problems, fmt.Sprintf("object %q: %v", o.Name, err))
		}
	}

	for _, conn := range c.Scene.Connections {
		if names[conn.From] == "" {
			problems = append(problems, fmt.Sprintf("connection %s: unknown source", conn))
		}
		if names[conn.To] == "" {
			problems = append(problems, fmt.Sprintf("connection %s: unknown target", conn))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Decode fills params from the object's params node and validates them.
// Fields missing from the node keep the values already in params.
func (o Object) Decode(params Params) error {
	if o.Params.Kind != 0 {
		if err := o.Params.Decode(params); err != nil {
			return err
		}
	}
	return params.Validate()
}
