// Package scene turns a config into live objects: it builds every script with
// its collaborators, wires signal connections and hands the result to a
// component manager.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Waystation/internal/anim"
	"Waystation/internal/behaviour"
	"Waystation/internal/camera"
	"Waystation/internal/config"
	"Waystation/internal/input"
	"Waystation/internal/logger"
	"Waystation/internal/physics"
	"Waystation/internal/picking"
	"Waystation/scripts"
)

var (
	ErrUnknownKind   = errors.New("unknown object kind")
	ErrUnknownObject = errors.New("unknown object")
	ErrUnknownSignal = errors.New("unknown signal")
	ErrUnknownSlot   = errors.New("unknown slot")
	ErrCycle         = errors.New("dependency cycle")
)

// Env carries what the host provides. Zero fields fall back to headless
// defaults.
type Env struct {
	Capture input.CaptureSetter  // defaults to an input.CaptureState
	Sky     scripts.ShaderParams // defaults to the scene's Uniforms
	Sound   anim.CuePlayer       // extra cue sink for buttons, may be nil
	Width   int32
	Height  int32
}

// Entry is one built scene object.
type Entry struct {
	Config config.Object
	Object *behaviour.GameObject
	Script behaviour.Component
}

type Scene struct {
	Manager  *behaviour.ComponentManager
	Router   *input.Router
	Actions  *input.ActionMap
	Picker   *picking.Picker
	World    *physics.World
	Uniforms *Uniforms
	Camera   *camera.Camera

	env      Env
	registry *Registry
	entries  map[string]*Entry
	order    []string
	building map[string]bool
	pending  map[string]config.Object
}

// Build creates the scene described by cfg. Objects are started only after
// every connection is in place.
func Build(cfg *config.Config, env Env, reg *Registry) (*Scene, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if env.Width <= 0 || env.Height <= 0 {
		env.Width, env.Height = cfg.Window.Width, cfg.Window.Height
	}

	s := &Scene{
		Manager:  behaviour.NewComponentManager(),
		Router:   input.NewRouter(),
		Actions:  input.NewActionMap(),
		Picker:   picking.NewPicker(),
		World:    physics.NewWorld(cfg.World.FloorY, cfg.World.Gravity.Vec()),
		Uniforms: NewUniforms(),
		registry: reg,
		entries:  make(map[string]*Entry, len(cfg.Scene.Objects)),
		building: make(map[string]bool),
		pending:  make(map[string]config.Object, len(cfg.Scene.Objects)),
	}
	if env.Capture == nil {
		env.Capture = &input.CaptureState{}
	}
	if env.Sky == nil {
		env.Sky = s.Uniforms
	}
	s.env = env

	for _, w := range cfg.World.Walls {
		s.World.AddWall(w.From.Vec(), w.To.Vec(), w.Thickness)
	}

	// Actions are tracked before any script sees the event.
	s.Router.Subscribe(s.Actions.Handle)

	for _, obj := range cfg.Scene.Objects {
		s.pending[obj.Name] = obj
	}
	for _, obj := range cfg.Scene.Objects {
		if _, err := s.resolve(obj.Name); err != nil {
			return nil, err
		}
	}

	for _, conn := range cfg.Scene.Connections {
		if err := s.connect(conn); err != nil {
			return nil, err
		}
	}

	for _, name := range s.order {
		s.Manager.RegisterGameObject(s.entries[name].Object)
	}
	logger.Log.Info("Scene built",
		zap.Int("objects", len(s.order)),
		zap.Int("connections", len(cfg.Scene.Connections)))
	return s, nil
}

// resolve returns the entry for name, building it first when needed. Builders
// call it to reach the scripts they depend on.
func (s *Scene) resolve(name string) (*Entry, error) {
	if e, ok := s.entries[name]; ok {
		return e, nil
	}
	obj, ok := s.pending[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, name)
	}
	if s.building[name] {
		return nil, fmt.Errorf("%w: %q", ErrCycle, name)
	}
	s.building[name] = true
	defer delete(s.building, name)

	build, ok := s.registry.Lookup(obj.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q for object %q", ErrUnknownKind, obj.Kind, name)
	}

	owner := behaviour.NewGameObject(name)
	owner.Tag = obj.Kind
	owner.Transform.SetPosition(obj.Position.Vec())
	rot := obj.Rotation.Vec()
	owner.Transform.SetEuler(mgl32.DegToRad(rot.X()), mgl32.DegToRad(rot.Y()), mgl32.DegToRad(rot.Z()))

	script, err := build(s, obj, owner)
	if err != nil {
		return nil, fmt.Errorf("build %s %q: %w", obj.Kind, name, err)
	}
	owner.AddComponent(script)

	e := &Entry{Config: obj, Object: owner, Script: script}
	s.entries[name] = e
	s.order = append(s.order, name)
	logger.Log.Debug("Object built", zap.String("name", name), zap.String("kind", obj.Kind))
	return e, nil
}

func (s *Scene) connect(conn config.Connection) error {
	from, ok := s.entries[conn.From]
	if !ok {
		return fmt.Errorf("connection %s: %w: %q", conn, ErrUnknownObject, conn.From)
	}
	to, ok := s.entries[conn.To]
	if !ok {
		return fmt.Errorf("connection %s: %w: %q", conn, ErrUnknownObject, conn.To)
	}

	emitter, ok := from.Script.(behaviour.SignalEmitter)
	if !ok {
		return fmt.Errorf("connection %s: %w", conn, ErrUnknownSignal)
	}
	sig, ok := emitter.Signal(conn.Signal)
	if !ok {
		return fmt.Errorf("connection %s: %w (have %v)", conn, ErrUnknownSignal, emitter.SignalNames())
	}

	provider, ok := to.Script.(behaviour.SlotProvider)
	if !ok {
		return fmt.Errorf("connection %s: %w", conn, ErrUnknownSlot)
	}
	slot, ok := provider.Slot(conn.Slot)
	if !ok {
		return fmt.Errorf("connection %s: %w (have %v)", conn, ErrUnknownSlot, provider.SlotNames())
	}

	sig.Connect(slot)
	return nil
}

// Entry returns the built object called name.
func (s *Scene) Entry(name string) (*Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Names returns object names in build order.
func (s *Scene) Names() []string {
	return append([]string(nil), s.order...)
}

// Step runs one frame: queued input first, then the physics step, then the
// per-frame update.
func (s *Scene) Step(dt float32) {
	s.Router.Flush()
	s.Manager.FixedUpdateAll(dt)
	s.Manager.UpdateAll(dt)
}

// Close destroys every object, which drops their input subscriptions.
func (s *Scene) Close() {
	s.Manager.Clear()
}

// ScriptOf returns the script of the named object as T.
func ScriptOf[T behaviour.Component](s *Scene, name string) (T, bool) {
	var zero T
	e, ok := s.entries[name]
	if !ok {
		return zero, false
	}
	t, ok := e.Script.(T)
	return t, ok
}

// ApplyTuning retunes live scripts from a reloaded config. Objects whose name
// or kind no longer match are skipped; a full rebuild is needed for those.
func (s *Scene) ApplyTuning(cfg *config.Config) error {
	var errs []error
	seen := make(map[string]bool, len(cfg.Scene.Objects))
	for _, obj := range cfg.Scene.Objects {
		seen[obj.Name] = true
		e, ok := s.entries[obj.Name]
		if !ok || e.Config.Kind != obj.Kind {
			logger.Log.Warn("Tuning skipped, object changed shape", zap.String("name", obj.Name))
			continue
		}
		t, ok := e.Script.(scripts.Tunable)
		if !ok {
			continue
		}
		if err := t.Retune(obj); err != nil {
			errs = append(errs, fmt.Errorf("retune %q: %w", obj.Name, err))
			continue
		}
		e.Config = obj
	}

	var gone []string
	for name := range s.entries {
		if !seen[name] {
			gone = append(gone, name)
		}
	}
	if len(gone) > 0 {
		sort.Strings(gone)
		logger.Log.Warn("Tuning ignores removed objects", zap.Strings("names", gone))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	logger.Log.Info("Tuning applied", zap.Int("objects", len(cfg.Scene.Objects)))
	return nil
}
