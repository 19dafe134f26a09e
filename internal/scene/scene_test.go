package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/config"
	"Waystation/internal/input"
	"Waystation/scripts"
)

func buildDefault(t *testing.T) (*Scene, *input.CaptureState) {
	t.Helper()
	capture := &input.CaptureState{}
	s, err := Build(config.Default(), Env{Capture: capture}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(s.Close)
	return s, capture
}

func gate(t *testing.T, s *Scene) *scripts.Jumpgate {
	t.Helper()
	g, ok := ScriptOf[*scripts.Jumpgate](s, "jumpgate")
	if !ok {
		t.Fatal("jumpgate not found")
	}
	return g
}

func TestBuildDefaultStation(t *testing.T) {
	s, capture := buildDefault(t)

	if len(s.Names()) != 9 {
		t.Errorf("Expected 9 objects, got %v", s.Names())
	}
	if s.Camera == nil {
		t.Error("player should provide the camera")
	}
	if capture.Mode != input.CaptureCaptured {
		t.Errorf("player start should capture the pointer, got %v", capture.Mode)
	}
	if len(s.Picker.Areas()) != 4 {
		t.Errorf("Expected 4 hit areas, got %d", len(s.Picker.Areas()))
	}
	if s.World.Walls() != 4 {
		t.Errorf("Expected 4 walls, got %d", s.World.Walls())
	}
	if v, _ := s.Uniforms.Get(scripts.ParamStarCount); v != uint64(3) {
		t.Errorf("Expected star_count 3, got %v", v)
	}
}

func TestLeverUpSpinsUpJumpgate(t *testing.T) {
	s, _ := buildDefault(t)
	g := gate(t, s)

	s.Router.Post(input.PointerPress{Button: input.ButtonLeft, Target: "inner_lever"})
	s.Router.Post(input.PointerMotion{Relative: mgl32.Vec2{0, -400}})
	s.Router.Post(input.PointerRelease{Button: input.ButtonLeft})
	s.Step(1)

	want := float32(math.Pi / 40)
	if g.TargetInnerVelocity() != want {
		t.Fatalf("Expected inner target %v, got %v", want, g.TargetInnerVelocity())
	}
	if g.TargetOuterVelocity() != 0 {
		t.Errorf("outer ring should stay idle, got %v", g.TargetOuterVelocity())
	}
	if g.InnerVelocity() != want {
		t.Errorf("Expected inner velocity to reach %v within a second, got %v", want, g.InnerVelocity())
	}
}

func TestStopButtonStopsJumpgate(t *testing.T) {
	s, _ := buildDefault(t)
	g := gate(t, s)
	g.SetTargetOuterVelocity(1)
	s.Step(1)

	s.Router.Post(input.PointerPress{Button: input.ButtonLeft, Target: "stop_button"})
	s.Step(0.01)

	if g.OuterVelocity() != 0 || g.TargetOuterVelocity() != 0 {
		t.Errorf("stop button should halt the gate, got %v", g.OuterVelocity())
	}
}

func TestPowerButtonDrivesScreen(t *testing.T) {
	s, _ := buildDefault(t)
	screen, _ := ScriptOf[*scripts.Screen](s, "status_screen")
	if screen.On() {
		t.Fatal("status screen starts off")
	}

	press := input.PointerPress{Button: input.ButtonLeft, Target: "power_button"}
	s.Router.Dispatch(press)
	if !screen.On() {
		t.Error("first press should turn the screen on")
	}
	s.Router.Dispatch(press)
	if screen.On() {
		t.Error("second press should turn the screen off")
	}
}

func TestBuildResolvesDependencies(t *testing.T) {
	cfg := &config.Config{Window: config.Window{Width: 4, Height: 3}}
	cfg.Scene.Objects = []config.Object{
		{Name: "station", Kind: config.KindStation},
		{Name: "sky", Kind: config.KindGame},
	}
	if err := cfg.Scene.Objects[0].Params.Encode(map[string]string{"game": "sky"}); err != nil {
		t.Fatal(err)
	}

	s, err := Build(cfg, Env{}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer s.Close()

	if names := s.Names(); names[0] != "sky" || names[1] != "station" {
		t.Errorf("game should be built before the station, got %v", names)
	}
}

func TestBuildErrors(t *testing.T) {
	base := func() *config.Config {
		cfg := &config.Config{Window: config.Window{Width: 4, Height: 3}}
		cfg.Scene.Objects = []config.Object{
			{Name: "lever", Kind: config.KindLever},
			{Name: "gate", Kind: config.KindJumpgate},
		}
		return cfg
	}

	cases := []struct {
		name string
		edit func(*config.Config)
		want error
	}{
		{"kind", func(c *config.Config) { c.Scene.Objects[0].Kind = "teapot" }, ErrUnknownKind},
		{"signal", func(c *config.Config) {
			c.Scene.Connections = []config.Connection{{From: "lever", Signal: "lever_sideways", To: "gate", Slot: "spin_up"}}
		}, ErrUnknownSignal},
		{"slot", func(c *config.Config) {
			c.Scene.Connections = []config.Connection{{From: "lever", Signal: "lever_up", To: "gate", Slot: "explode"}}
		}, ErrUnknownSlot},
		{"target", func(c *config.Config) {
			c.Scene.Connections = []config.Connection{{From: "lever", Signal: "lever_up", To: "nowhere", Slot: "stop"}}
		}, ErrUnknownObject},
		{"no slots", func(c *config.Config) {
			c.Scene.Connections = []config.Connection{{From: "gate", Signal: "lever_up", To: "lever", Slot: "stop"}}
		}, ErrUnknownSignal},
	}
	for _, tc := range cases {
		cfg := base()
		tc.edit(cfg)
		if _, err := Build(cfg, Env{}, nil); !errors.Is(err, tc.want) {
			t.Errorf("%s: Expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestApplyTuning(t *testing.T) {
	s, _ := buildDefault(t)
	g := gate(t, s)

	cfg := config.Default()
	for i, obj := range cfg.Scene.Objects {
		if obj.Name == "jumpgate" {
			if err := cfg.Scene.Objects[i].Params.Encode(map[string]float32{"acceleration": 100, "spin_inner_velocity": 3}); err != nil {
				t.Fatal(err)
			}
		}
	}

	if err := s.ApplyTuning(cfg); err != nil {
		t.Fatalf("ApplyTuning failed: %v", err)
	}

	spin, _ := g.Slot("spin_up_inner")
	spin()
	s.Step(0.5)
	if g.InnerVelocity() != 3 {
		t.Errorf("Expected retuned spin velocity 3, got %v", g.InnerVelocity())
	}
}

func TestApplyTuningReportsBadParams(t *testing.T) {
	s, _ := buildDefault(t)

	cfg := config.Default()
	for i, obj := range cfg.Scene.Objects {
		if obj.Name == "inner_lever" {
			if err := cfg.Scene.Objects[i].Params.Encode(map[string]float32{"sensitivity": -1}); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := s.ApplyTuning(cfg); err == nil {
		t.Error("Expected error for negative sensitivity")
	}
}

func TestCloseDropsSubscriptions(t *testing.T) {
	s, err := Build(config.Default(), Env{}, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s.Close()

	global, area := s.Router.Observers()
	if global != 1 || area != 0 {
		t.Errorf("only the action map should remain subscribed, got %d global %d area", global, area)
	}
}

func TestRegistryKinds(t *testing.T) {
	kinds := DefaultRegistry().Kinds()
	want := []string{"button", "game", "jumpgate", "lever", "player", "screen", "station"}
	if len(kinds) != len(want) {
		t.Fatalf("Expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, kinds)
			break
		}
	}
}
