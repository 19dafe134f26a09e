package termhost

import (
	"sort"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"Waystation/internal/input"
)

// keyHold is how long a key counts as held after its last event. Terminals
// report no key releases, only presses and auto-repeat.
const keyHold = 500 * time.Millisecond

var namedKeys = map[tcell.Key]string{
	tcell.KeyUp:    "Up",
	tcell.KeyDown:  "Down",
	tcell.KeyLeft:  "Left",
	tcell.KeyRight: "Right",
	tcell.KeyEnter: "Enter",
	tcell.KeyTab:   "Tab",
}

// keyName returns the binding name for a terminal key event.
func keyName(key tcell.Key, r rune) (string, bool) {
	if key == tcell.KeyRune {
		if r == ' ' {
			return "Space", true
		}
		return strings.ToUpper(string(r)), true
	}
	name, ok := namedKeys[key]
	return name, ok
}

// keyLatch turns repeated key presses into held keys that expire.
type keyLatch struct {
	seen map[string]time.Time
}

func newKeyLatch() *keyLatch {
	return &keyLatch{seen: make(map[string]time.Time)}
}

// Press records name at now and reports whether it was newly pressed.
func (l *keyLatch) Press(name string, now time.Time) bool {
	_, held := l.seen[name]
	l.seen[name] = now
	return !held
}

// Expire drops keys not seen within keyHold and returns them sorted.
func (l *keyLatch) Expire(now time.Time) []string {
	var gone []string
	for name, t := range l.seen {
		if now.Sub(t) > keyHold {
			gone = append(gone, name)
			delete(l.seen, name)
		}
	}
	sort.Strings(gone)
	return gone
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button input.MouseButton
	name   string
}{
	{tcell.ButtonPrimary, input.ButtonLeft, "mouse_left"},
	{tcell.ButtonSecondary, input.ButtonRight, "mouse_right"},
	{tcell.ButtonMiddle, input.ButtonMiddle, "mouse_middle"},
}

type buttonChange struct {
	button input.MouseButton
	name   string
	down   bool
}

// buttonChanges compares two button masks.
func buttonChanges(prev, cur tcell.ButtonMask) []buttonChange {
	var out []buttonChange
	for _, b := range mouseButtons {
		was, is := prev&b.mask != 0, cur&b.mask != 0
		if was != is {
			out = append(out, buttonChange{button: b.button, name: b.name, down: is})
		}
	}
	return out
}

// wheelNames lists the wheel steps in a mask.
func wheelNames(mask tcell.ButtonMask) []string {
	var out []string
	if mask&tcell.WheelUp != 0 {
		out = append(out, "wheel_up")
	}
	if mask&tcell.WheelDown != 0 {
		out = append(out, "wheel_down")
	}
	return out
}
