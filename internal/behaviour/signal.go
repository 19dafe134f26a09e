package behaviour

import (
	"github.com/google/uuid"
)

// Connection identifies a listener connected to a Signal.
type Connection uuid.UUID

type listener struct {
	id Connection
	fn func()
}

// Signal is a payload-free notification that any number of listeners can
// connect to. Listeners run synchronously in connection order.
type Signal struct {
	name      string
	listeners []listener
}

func NewSignal(name string) *Signal {
	return &Signal{name: name}
}

func (s *Signal) Name() string {
	return s.name
}

// Connect adds fn and returns a handle for Disconnect.
func (s *Signal) Connect(fn func()) Connection {
	id := Connection(uuid.New())
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return id
}

// Disconnect removes a listener. It reports whether the listener was connected.
func (s *Signal) Disconnect(id Connection) bool {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Emit calls every listener connected at the time of the call.
func (s *Signal) Emit() {
	listeners := s.listeners
	for _, l := range listeners {
		l.fn()
	}
}

// Listeners returns how many listeners are connected.
func (s *Signal) Listeners() int {
	return len(s.listeners)
}

// SignalEmitter is implemented by components that expose named signals.
type SignalEmitter interface {
	Signal(name string) (*Signal, bool)
	SignalNames() []string
}

// SlotProvider is implemented by components that expose named parameterless
// operations other objects can connect signals to.
type SlotProvider interface {
	Slot(name string) (func(), bool)
	SlotNames() []string
}
