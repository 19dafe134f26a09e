package scripts

import (
	"fmt"

	"go.uber.org/zap"

	"Waystation/internal/anim"
	"Waystation/internal/behaviour"
	"Waystation/internal/config"
	"Waystation/internal/input"
	"Waystation/internal/logger"
)

const (
	SignalButtonPressed  = "button_pressed"
	SignalButtonReleased = "button_released"
)

// ButtonDeps are the handles a button needs.
type ButtonDeps struct {
	Router *input.Router
	Area   string         // hit area the host reports as the event target
	Cues   anim.CuePlayer // receives "press" and "release"
}

// Button is a toggle or momentary push button.
//
// Press emits button_released and Release emits button_pressed. Scene
// connections are written against that pairing.
type Button struct {
	behaviour.BaseComponent
	signals
	slots

	toggle  bool
	pressed bool

	router *input.Router
	cues   anim.CuePlayer
	area   input.Subscription
	global input.Subscription
}

func NewButton(p config.ButtonParams, deps ButtonDeps) (*Button, error) {
	if deps.Router == nil {
		return nil, fmt.Errorf("%w: button needs an input router", ErrMissingCollaborator)
	}
	if deps.Area == "" {
		return nil, fmt.Errorf("%w: button needs a hit area", ErrMissingCollaborator)
	}
	if deps.Cues == nil {
		return nil, fmt.Errorf("%w: button needs an animation player", ErrMissingCollaborator)
	}

	b := &Button{
		signals: newSignals(SignalButtonPressed, SignalButtonReleased),
		toggle:  p.Toggle,
		router:  deps.Router,
		cues:    deps.Cues,
	}
	b.slots = slots{
		"press":   b.Press,
		"release": b.Release,
	}
	b.area = deps.Router.SubscribeArea(deps.Area, b.HandlePointer)
	b.global = deps.Router.Subscribe(b.handleGlobal)
	return b, nil
}

func (b *Button) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (b *Button) GetTypeName() string {
	return "Button"
}

// HandlePointer reacts to events on the button's hit area. Only a left press
// counts.
func (b *Button) HandlePointer(ev input.Event) {
	if !input.IsLeftPress(ev) {
		return
	}
	switch {
	case b.toggle && b.pressed:
		b.Release()
	case b.toggle, !b.pressed:
		b.Press()
	}
}

// handleGlobal releases a held momentary button wherever the pointer goes up.
func (b *Button) handleGlobal(ev input.Event) {
	if input.IsLeftRelease(ev) && !b.toggle && b.pressed {
		b.Release()
	}
}

func (b *Button) Press() {
	b.pressed = true
	logger.Log.Debug("Button pressed", zap.String("button", objectName(b)))
	b.signals[SignalButtonReleased].Emit()
	b.cues.Play("press")
}

func (b *Button) Release() {
	b.pressed = false
	logger.Log.Debug("Button released", zap.String("button", objectName(b)))
	b.signals[SignalButtonPressed].Emit()
	b.cues.Play("release")
}

func (b *Button) Pressed() bool {
	return b.pressed
}

func (b *Button) IsToggle() bool {
	return b.toggle
}

func (b *Button) Retune(obj config.Object) error {
	p := config.DefaultButton()
	if err := obj.Decode(&p); err != nil {
		return err
	}
	b.toggle = p.Toggle
	return nil
}

// OnDestroy drops both input subscriptions.
func (b *Button) OnDestroy() {
	b.router.Unsubscribe(b.area)
	b.router.Unsubscribe(b.global)
}
