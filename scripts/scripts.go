// Package scripts holds the gameplay components of the station: buttons,
// levers, the jumpgate, the player controller and the screen/sky wrappers.
// Every script receives its collaborators at construction.
package scripts

import (
	"errors"
	"sort"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
)

// ErrMissingCollaborator is returned by constructors when a required handle is nil.
var ErrMissingCollaborator = errors.New("missing collaborator")

// Tunable scripts accept new parameters while running.
type Tunable interface {
	Retune(obj config.Object) error
}

// signals is the named signal set a script exposes.
type signals map[string]*behaviour.Signal

func newSignals(names ...string) signals {
	s := make(signals, len(names))
	for _, n := range names {
		s[n] = behaviour.NewSignal(n)
	}
	return s
}

func (s signals) Signal(name string) (*behaviour.Signal, bool) {
	sig, ok := s[name]
	return sig, ok
}

func (s signals) SignalNames() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// slots is the named operation set a script exposes.
type slots map[string]func()

func (s slots) Slot(name string) (func(), bool) {
	fn, ok := s[name]
	return fn, ok
}

func (s slots) SlotNames() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func objectName(c behaviour.Component) string {
	if obj := c.GetGameObject(); obj != nil {
		return obj.Name
	}
	return ""
}
