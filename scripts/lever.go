package scripts

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
	"Waystation/internal/input"
	"Waystation/internal/logger"
	"Waystation/internal/mathx"
)

const (
	SignalLeverUp   = "lever_up"
	SignalLeverDown = "lever_down"

	leverThreshold = 0.9
)

type LeverDeps struct {
	Router *input.Router
	Area   string
	Handle *behaviour.Transform // rotated about local X
}

// Lever is dragged vertically through [-1, 1] and signals when its position
// crosses ±0.9.
type Lever struct {
	behaviour.BaseComponent
	signals

	position    float32
	held        bool
	maxRotation float32 // radians
	sensitivity float32

	router *input.Router
	handle *behaviour.Transform
	area   input.Subscription
	global input.Subscription
}

func NewLever(p config.LeverParams, deps LeverDeps) (*Lever, error) {
	if deps.Router == nil {
		return nil, fmt.Errorf("%w: lever needs an input router", ErrMissingCollaborator)
	}
	if deps.Area == "" {
		return nil, fmt.Errorf("%w: lever needs a hit area", ErrMissingCollaborator)
	}
	if deps.Handle == nil {
		return nil, fmt.Errorf("%w: lever needs a handle", ErrMissingCollaborator)
	}

	l := &Lever{
		signals:     newSignals(SignalLeverUp, SignalLeverDown),
		maxRotation: mgl32.DegToRad(p.MaxRotationDeg),
		sensitivity: p.Sensitivity,
		router:      deps.Router,
		handle:      deps.Handle,
	}
	l.area = deps.Router.SubscribeArea(deps.Area, l.handleArea)
	l.global = deps.Router.Subscribe(l.handleGlobal)
	l.apply()
	return l, nil
}

func (l *Lever) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (l *Lever) GetTypeName() string {
	return "Lever"
}

func (l *Lever) handleArea(ev input.Event) {
	if input.IsLeftPress(ev) {
		l.held = true
	}
}

// handleGlobal follows the pointer off the hit area while held.
func (l *Lever) handleGlobal(ev input.Event) {
	switch e := ev.(type) {
	case input.PointerRelease:
		if e.Button == input.ButtonLeft {
			l.held = false
		}
	case input.PointerMotion:
		if l.held {
			l.Drag(e.Relative.Y())
		}
	}
}

// Drag moves the lever by a vertical pointer delta. Moving the pointer up
// (negative dy) raises the lever.
func (l *Lever) Drag(dy float32) {
	next := mathx.Clamp(l.position-l.sensitivity*dy, -1, 1)

	if l.position < leverThreshold && next >= leverThreshold {
		logger.Log.Debug("Lever up", zap.String("lever", objectName(l)))
		l.signals[SignalLeverUp].Emit()
	} else if l.position > -leverThreshold && next <= -leverThreshold {
		logger.Log.Debug("Lever down", zap.String("lever", objectName(l)))
		l.signals[SignalLeverDown].Emit()
	}

	l.position = next
	l.apply()
}

func (l *Lever) apply() {
	l.handle.SetEuler(l.maxRotation*l.position, 0, 0)
}

func (l *Lever) Position() float32 {
	return l.position
}

func (l *Lever) Held() bool {
	return l.held
}

func (l *Lever) Retune(obj config.Object) error {
	p := config.DefaultLever()
	if err := obj.Decode(&p); err != nil {
		return err
	}
	l.maxRotation = mgl32.DegToRad(p.MaxRotationDeg)
	l.sensitivity = p.Sensitivity
	l.apply()
	return nil
}

func (l *Lever) OnDestroy() {
	l.router.Unsubscribe(l.area)
	l.router.Unsubscribe(l.global)
}
