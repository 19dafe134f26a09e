package scene

import (
	"sort"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
)

// Builder constructs the script for one scene object. owner is the object the
// script will be attached to; builders may add child objects and helper
// components to it.
type Builder func(s *Scene, obj config.Object, owner *behaviour.GameObject) (behaviour.Component, error)

// Registry maps object kinds to builders.
type Registry struct {
	builders map[string]Builder
}

func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// DefaultRegistry knows every kind the station uses.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(config.KindButton, buildButton)
	r.Register(config.KindLever, buildLever)
	r.Register(config.KindJumpgate, buildJumpgate)
	r.Register(config.KindPlayer, buildPlayer)
	r.Register(config.KindScreen, buildScreen)
	r.Register(config.KindGame, buildGame)
	r.Register(config.KindStation, buildStation)
	return r
}

// Register adds or replaces the builder for kind.
func (r *Registry) Register(kind string, b Builder) {
	r.builders[kind] = b
}

func (r *Registry) Lookup(kind string) (Builder, bool) {
	b, ok := r.builders[kind]
	return b, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.builders))
	for k := range r.builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
