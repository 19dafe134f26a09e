package input

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Actions is the read side of the action state.
type Actions interface {
	Pressed(action string) bool
	Vector(negX, posX, negY, posY string) mgl32.Vec2
}

// ActionMap tracks which named actions are held, fed from ActionPress and
// ActionRelease events.
type ActionMap struct {
	held map[string]bool
}

func NewActionMap() *ActionMap {
	return &ActionMap{held: make(map[string]bool)}
}

// Handle updates the held set. It has the Handler signature so the map can be
// subscribed to a Router directly.
func (m *ActionMap) Handle(ev Event) {
	switch e := ev.(type) {
	case ActionPress:
		m.held[e.Action] = true
	case ActionRelease:
		delete(m.held, e.Action)
	}
}

// Pressed reports whether action is currently held.
func (m *ActionMap) Pressed(action string) bool {
	return m.held[action]
}

// Held lists the held actions in name order.
func (m *ActionMap) Held() []string {
	names := make([]string, 0, len(m.held))
	for name := range m.held {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Vector combines four actions into a 2D direction, limited to unit length.
func (m *ActionMap) Vector(negX, posX, negY, posY string) mgl32.Vec2 {
	v := mgl32.Vec2{
		strength(m, posX) - strength(m, negX),
		strength(m, posY) - strength(m, negY),
	}
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}

func strength(m *ActionMap, action string) float32 {
	if m.held[action] {
		return 1
	}
	return 0
}

// Release drops every held action, e.g. when the window loses focus.
func (m *ActionMap) Release() {
	for name := range m.held {
		delete(m.held, name)
	}
}

// Bindings maps action names to the input names that trigger them, e.g.
// "player_forward": ["W", "Up"]. Mouse buttons are named "mouse_left",
// "mouse_right" and "mouse_middle"; the wheel is "wheel_up" and "wheel_down".
type Bindings map[string][]string

// DefaultBindings returns the bindings used when the config names none.
func DefaultBindings() Bindings {
	return Bindings{
		"player_forward":          {"W", "Up"},
		"player_backward":         {"S", "Down"},
		"player_left":             {"A", "Left"},
		"player_right":            {"D", "Right"},
		"precision_mode":          {"mouse_right", "Shift"},
		"precision_mode_zoom_in":  {"wheel_up", "E"},
		"precision_mode_zoom_out": {"wheel_down", "Q"},
	}
}

// Index builds the reverse lookup from input name to actions.
func (b Bindings) Index() map[string][]string {
	idx := make(map[string][]string)
	actions := make([]string, 0, len(b))
	for action := range b {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		for _, name := range b[action] {
			idx[name] = append(idx[name], action)
		}
	}
	return idx
}

// Trigger turns a bound input going down or up into action events, using an
// index built by Bindings.Index.
func Trigger(index map[string][]string, name string, down bool) []Event {
	actions := index[name]
	if len(actions) == 0 {
		return nil
	}
	events := make([]Event, len(actions))
	for i, a := range actions {
		if down {
			events[i] = ActionPress{Action: a}
		} else {
			events[i] = ActionRelease{Action: a}
		}
	}
	return events
}
