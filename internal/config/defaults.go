package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"Waystation/internal/input"
)

//go:embed station.yaml
var stationYAML []byte

// Default returns the built-in station: a console room with two levers, two
// buttons and a status screen facing the jumpgate.
func Default() *Config {
	cfg := &Config{
		Window: Window{
			Title:  "Waystation",
			Width:  1280,
			Height: 720,
		},
		Bindings: input.DefaultBindings(),
		World: World{
			Gravity: Vec3{0, -9.8, 0},
		},
	}
	if err := yaml.Unmarshal(stationYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded station.yaml: %v", err))
	}
	return cfg
}
