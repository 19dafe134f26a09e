package config

import (
	"errors"
	"math"
)

// Script kinds understood by the scene builder.
const (
	KindButton   = "button"
	KindLever    = "lever"
	KindJumpgate = "jumpgate"
	KindPlayer   = "player"
	KindScreen   = "screen"
	KindGame     = "game"
	KindStation  = "station"
)

// Params is implemented by every per-kind parameter block.
type Params interface {
	Validate() error
}

// DefaultParams returns a params block with defaults for kind.
func DefaultParams(kind string) (Params, bool) {
	switch kind {
	case KindButton:
		p := DefaultButton()
		return &p, true
	case KindLever:
		p := DefaultLever()
		return &p, true
	case KindJumpgate:
		p := DefaultJumpgate()
		return &p, true
	case KindPlayer:
		p := DefaultPlayer()
		return &p, true
	case KindScreen:
		p := DefaultScreen()
		return &p, true
	case KindGame:
		p := DefaultGame()
		return &p, true
	case KindStation:
		p := DefaultStation()
		return &p, true
	}
	return nil, false
}

type ButtonParams struct {
	Toggle     bool    `yaml:"toggle"`
	HitRadius  float32 `yaml:"hit_radius"`
	PressDepth float32 `yaml:"press_depth"`
	PressTime  float32 `yaml:"press_time"`
	Sound      bool    `yaml:"sound"`
}

func DefaultButton() ButtonParams {
	return ButtonParams{
		HitRadius:  0.12,
		PressDepth: 0.02,
		PressTime:  0.08,
		Sound:      true,
	}
}

func (p *ButtonParams) Validate() error {
	if p.HitRadius <= 0 {
		return errors.New("hit_radius must be positive")
	}
	if p.PressDepth < 0 || p.PressTime < 0 {
		return errors.New("press_depth and press_time must not be negative")
	}
	return nil
}

type LeverParams struct {
	MaxRotationDeg float32 `yaml:"max_rotation_deg"`
	Sensitivity    float32 `yaml:"sensitivity"`
	HitRadius      float32 `yaml:"hit_radius"`
}

func DefaultLever() LeverParams {
	return LeverParams{
		MaxRotationDeg: 59,
		Sensitivity:    0.005,
		HitRadius:      0.15,
	}
}

func (p *LeverParams) Validate() error {
	if p.Sensitivity <= 0 {
		return errors.New("sensitivity must be positive")
	}
	if p.MaxRotationDeg <= 0 || p.MaxRotationDeg > 180 {
		return errors.New("max_rotation_deg must be in (0, 180]")
	}
	if p.HitRadius <= 0 {
		return errors.New("hit_radius must be positive")
	}
	return nil
}

type JumpgateParams struct {
	Acceleration       float32 `yaml:"acceleration"`
	SpinInnerVelocity  float32 `yaml:"spin_inner_velocity"`
	SpinOuterVelocity  float32 `yaml:"spin_outer_velocity"`
	InitialInnerTarget float32 `yaml:"initial_inner_target"`
	InitialOuterTarget float32 `yaml:"initial_outer_target"`
}

func DefaultJumpgate() JumpgateParams {
	return JumpgateParams{
		Acceleration:      math.Pi / 10,
		SpinInnerVelocity: math.Pi / 40,
		SpinOuterVelocity: math.Pi / 20,
	}
}

func (p *JumpgateParams) Validate() error {
	if p.Acceleration <= 0 {
		return errors.New("acceleration must be positive")
	}
	return nil
}

type PlayerParams struct {
	Fov                 float32 `yaml:"fov"`
	Speed               float32 `yaml:"speed"`
	MouseSensitivity    float32 `yaml:"mouse_sensitivity"`
	ZoomStep            float32 `yaml:"zoom_step"`
	ZoomEnabled         bool    `yaml:"zoom_enabled"`
	LookInPrecisionMode bool    `yaml:"look_in_precision_mode"`
	EyeHeight           float32 `yaml:"eye_height"`
	Radius              float32 `yaml:"radius"`
}

func DefaultPlayer() PlayerParams {
	return PlayerParams{
		Fov:              75,
		Speed:            250,
		MouseSensitivity: 0.001,
		ZoomStep:         5,
		ZoomEnabled:      true,
		EyeHeight:        1.6,
		Radius:           0.4,
	}
}

func (p *PlayerParams) Validate() error {
	if p.Fov < 5 || p.Fov >= 180 {
		return errors.New("fov must be in [5, 180)")
	}
	if p.Speed < 0 || p.MouseSensitivity < 0 || p.ZoomStep < 0 {
		return errors.New("speed, mouse_sensitivity and zoom_step must not be negative")
	}
	if p.Radius <= 0 {
		return errors.New("radius must be positive")
	}
	return nil
}

type ScreenParams struct {
	Template string   `yaml:"template"`
	Lines    []string `yaml:"lines"`
	X        int      `yaml:"x"`
	Y        int      `yaml:"y"`
	Width    float32  `yaml:"width"`
	On       bool     `yaml:"on"`
}

func DefaultScreen() ScreenParams {
	return ScreenParams{
		X:     100,
		Y:     100,
		Width: 1.0,
		On:    true,
	}
}

func (p *ScreenParams) Validate() error {
	if p.X <= 0 || p.Y <= 0 {
		return errors.New("x and y must be positive")
	}
	if p.Width < 0 {
		return errors.New("width must not be negative")
	}
	return nil
}

type Star struct {
	Name     string `yaml:"name"`
	Diameter uint64 `yaml:"diameter"`
	Position Vec3   `yaml:"position"`
}

type GameParams struct {
	SystemStar Star   `yaml:"system_star"`
	Stars      []Star `yaml:"stars"`
}

func DefaultGame() GameParams {
	return GameParams{
		SystemStar: Star{Name: "Googer", Diameter: 1400000},
		Stars: []Star{
			{Name: "Goober", Diameter: 1200000, Position: Vec3{4, 10, 3}},
			{Name: "Gorgar", Diameter: 1200000, Position: Vec3{5, 2, 0}},
			{Name: "Stroober", Diameter: 1200000, Position: Vec3{4, 2, 10}},
		},
	}
}

func (p *GameParams) Validate() error {
	for _, s := range p.Stars {
		if s.Name == "" {
			return errors.New("every star needs a name")
		}
	}
	return nil
}

type StationParams struct {
	Game  string `yaml:"game"`
	Drift Vec3   `yaml:"drift"` // radians per second about X, Y, Z
}

func DefaultStation() StationParams {
	return StationParams{}
}

func (p *StationParams) Validate() error {
	return nil
}
