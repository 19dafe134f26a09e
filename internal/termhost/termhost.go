// Package termhost runs a scene in a terminal. Buttons and levers are drawn as
// clickable boxes, the rest of the station is reported as status text.
package termhost

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Waystation/internal/audio"
	"Waystation/internal/config"
	"Waystation/internal/input"
	"Waystation/internal/logger"
	"Waystation/internal/scene"
)

const (
	frameInterval = 16 * time.Millisecond
	// cellPixels scales cell deltas to the pixel deltas scripts are tuned for.
	cellPixels = 10
)

type Host struct {
	cfg      *config.Config
	watcher  *config.Watcher
	screen   tcell.Screen
	scene    *scene.Scene
	layout   layout
	bindings map[string][]string
	keys     *keyLatch
	capture  input.CaptureMode

	buttons      tcell.ButtonMask
	lastX, lastY int
	havePointer  bool
}

// New prepares a host for cfg. watcher may be nil.
func New(cfg *config.Config, watcher *config.Watcher) *Host {
	return &Host{
		cfg:      cfg,
		watcher:  watcher,
		bindings: cfg.Bindings.Index(),
		keys:     newKeyLatch(),
	}
}

// Run takes over the terminal until Escape or Ctrl-C.
func (h *Host) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	var sound *audio.CuePlayer
	if err := audio.Init(); err != nil {
		logger.Log.Warn("Audio unavailable, running silent", zap.Error(err))
	} else {
		sound = audio.NewCuePlayer(audio.DefaultTones())
		defer audio.Close()
	}

	if err := h.start(screen, sound); err != nil {
		return err
	}
	defer h.scene.Close()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if h.handle(ev) {
				logger.Log.Info("Terminal host exiting")
				return nil
			}
		case now := <-ticker.C:
			h.tick(now, float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}

// start builds the scene against screen. sound may be nil.
func (h *Host) start(screen tcell.Screen, sound *audio.CuePlayer) error {
	h.screen = screen
	w, ht := screen.Size()

	env := scene.Env{Capture: h, Width: int32(w * cellPixels), Height: int32(ht * cellPixels)}
	if sound != nil {
		env.Sound = sound
	}
	s, err := scene.Build(h.cfg, env, nil)
	if err != nil {
		logger.Log.Error("Could not build scene", zap.Error(err))
		return err
	}
	h.scene = s
	h.layout = newLayout(s, w)
	h.draw()
	return nil
}

// handle reacts to one terminal event and reports whether to quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune(), time.Now())
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		w, _ := h.screen.Size()
		h.layout = newLayout(h.scene, w)
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(key tcell.Key, r rune, now time.Time) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	name, ok := keyName(key, r)
	if !ok {
		return false
	}
	if h.keys.Press(name, now) {
		h.post(input.Trigger(h.bindings, name, true)...)
	}
	return false
}

func (h *Host) handleMouse(x, y int, mask tcell.ButtonMask) {
	pos := mgl32.Vec2{float32(x * cellPixels), float32(y * cellPixels)}
	target := h.layout.At(x, y)

	if h.havePointer && (x != h.lastX || y != h.lastY) {
		h.post(input.PointerMotion{
			Position: pos,
			Relative: mgl32.Vec2{float32((x - h.lastX) * cellPixels), float32((y - h.lastY) * cellPixels)},
			Target:   target,
		})
	}
	h.lastX, h.lastY, h.havePointer = x, y, true

	for _, c := range buttonChanges(h.buttons, mask) {
		if c.down {
			h.post(input.PointerPress{Button: c.button, Position: pos, Target: target})
		} else {
			h.post(input.PointerRelease{Button: c.button, Position: pos, Target: target})
		}
		h.post(input.Trigger(h.bindings, c.name, c.down)...)
	}
	h.buttons = mask &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	for _, name := range wheelNames(mask) {
		h.post(input.Trigger(h.bindings, name, true)...)
		h.post(input.Trigger(h.bindings, name, false)...)
	}
}

// tick releases expired keys, applies reloads, steps the scene and redraws.
func (h *Host) tick(now time.Time, dt float32) {
	for _, name := range h.keys.Expire(now) {
		h.post(input.Trigger(h.bindings, name, false)...)
	}
	h.drainReloads()
	h.scene.Step(dt)
	h.draw()
}

func (h *Host) drainReloads() {
	if h.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-h.watcher.Updates:
		if !ok {
			h.watcher = nil
			return
		}
		h.bindings = cfg.Bindings.Index()
		if err := h.scene.ApplyTuning(cfg); err != nil {
			logger.Log.Error("Config reload rejected", zap.Error(err))
		}
	case err, ok := <-h.watcher.Errors:
		if ok {
			logger.Log.Error("Config reload failed", zap.Error(err))
		}
	default:
	}
}

// SetCaptureMode implements input.CaptureSetter. A terminal cannot hide or
// hold the pointer, so the mode is only recorded and shown.
func (h *Host) SetCaptureMode(m input.CaptureMode) {
	h.capture = m
	h.havePointer = false
	logger.Log.Debug("Capture mode", zap.Stringer("mode", m))
}

func (h *Host) post(events ...input.Event) {
	for _, ev := range events {
		h.scene.Router.Post(ev)
	}
}
