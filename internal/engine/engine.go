// Package engine runs a scene in a glfw window. Window callbacks become input
// events; each frame flushes them, steps the scene and presents.
package engine

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Waystation/internal/audio"
	"Waystation/internal/config"
	"Waystation/internal/input"
	"Waystation/internal/logger"
	"Waystation/internal/picking"
	"Waystation/internal/scene"
	"Waystation/scripts"
)

const titleInterval = 0.5 // seconds between title refreshes

type Host struct {
	Width  int32
	Height int32

	cfg      *config.Config
	watcher  *config.Watcher
	scene    *scene.Scene
	window   *glfw.Window
	bindings map[string][]string
	capture  input.CaptureMode

	lastX, lastY float64
	firstMouse   bool
	titleTimer   float64
}

// New prepares a host for cfg. watcher may be nil.
func New(cfg *config.Config, watcher *config.Watcher) *Host {
	return &Host{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		cfg:        cfg,
		watcher:    watcher,
		bindings:   cfg.Bindings.Index(),
		firstMouse: true,
	}
}

// Run opens the window, builds the scene and blocks until the window closes.
// It must be called from the main goroutine.
func (h *Host) Run() error {
	runtime.LockOSThread()
	logger.Log.Info("Waystation initializing...")

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(h.Width), int(h.Height), h.cfg.Window.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return err
	}
	h.window = window
	defer window.Destroy()

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		logger.Log.Error("Could not initialize OpenGL", zap.Error(err))
		return err
	}
	setDarkTitleBar(window)

	env := scene.Env{Capture: h, Width: h.Width, Height: h.Height}
	if err := audio.Init(); err != nil {
		logger.Log.Warn("Audio unavailable, running silent", zap.Error(err))
	} else {
		env.Sound = audio.NewCuePlayer(audio.DefaultTones())
		defer audio.Close()
	}

	s, err := scene.Build(h.cfg, env, nil)
	if err != nil {
		logger.Log.Error("Could not build scene", zap.Error(err))
		return err
	}
	h.scene = s
	defer s.Close()

	window.SetCursorPosCallback(h.cursorCallback)
	window.SetMouseButtonCallback(h.mouseButtonCallback)
	window.SetKeyCallback(h.keyCallback)
	window.SetScrollCallback(h.scrollCallback)
	window.SetFocusCallback(h.focusCallback)

	h.loop()
	return nil
}

func (h *Host) loop() {
	lastTime := glfw.GetTime()
	lastWidth, lastHeight := h.Width, h.Height

	for !h.window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - lastTime
		lastTime = now

		w, ht := h.window.GetFramebufferSize()
		h.Width, h.Height = int32(w), int32(ht)
		if h.Width != lastWidth || h.Height != lastHeight {
			gl.Viewport(0, 0, h.Width, h.Height)
			if h.scene.Camera != nil && h.Height > 0 {
				h.scene.Camera.SetAspectRatio(float32(h.Width) / float32(h.Height))
			}
			lastWidth, lastHeight = h.Width, h.Height
		}

		h.drainReloads()
		h.scene.Step(float32(dt))
		h.present()

		h.titleTimer += dt
		if h.titleTimer >= titleInterval {
			h.titleTimer = 0
			h.window.SetTitle(h.title())
		}

		h.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// present clears to a sky tint that brightens with the gate's spin.
func (h *Host) present() {
	var spin float32
	if g, ok := scene.ScriptOf[*scripts.Jumpgate](h.scene, "jumpgate"); ok {
		spin = mgl32.Clamp(g.InnerVelocity()+g.OuterVelocity(), 0, 1)
	}
	gl.ClearColor(0.01, 0.01+0.05*spin, 0.03+0.15*spin, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (h *Host) title() string {
	title := h.cfg.Window.Title
	if g, ok := scene.ScriptOf[*scripts.Jumpgate](h.scene, "jumpgate"); ok {
		title += fmt.Sprintf("  gate %.3f/%.3f", g.InnerVelocity(), g.OuterVelocity())
	}
	if p, ok := scene.ScriptOf[*scripts.Player](h.scene, "player"); ok && p.InPrecisionMode() {
		title += fmt.Sprintf("  fov %.0f", p.Fov())
	}
	return title
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

// SetCaptureMode implements input.CaptureSetter with glfw cursor modes.
func (h *Host) SetCaptureMode(m input.CaptureMode) {
	h.capture = m
	h.firstMouse = true
	if h.window != nil {
		h.window.SetInputMode(glfw.CursorMode, cursorMode(m))
	}
	logger.Log.Debug("Capture mode", zap.Stringer("mode", m))
}

// pick returns the hit area under the pointer. A captured pointer aims from
// the middle of the screen.
func (h *Host) pick(x, y float64) string {
	cam := h.scene.Camera
	if cam == nil {
		return ""
	}
	if h.capture == input.CaptureCaptured {
		x, y = float64(h.Width)/2, float64(h.Height)/2
	}
	ray := picking.ScreenToRay(cam, float32(x), float32(y), int(h.Width), int(h.Height))
	name, _ := h.scene.Picker.Pick(ray)
	return name
}

func (h *Host) post(events ...input.Event) {
	for _, ev := range events {
		h.scene.Router.Post(ev)
	}
}

func (h *Host) cursorCallback(w *glfw.Window, xpos, ypos float64) {
	if h.firstMouse {
		h.lastX, h.lastY = xpos, ypos
		h.firstMouse = false
		return
	}
	rel := mgl32.Vec2{float32(xpos - h.lastX), float32(ypos - h.lastY)}
	h.lastX, h.lastY = xpos, ypos

	h.post(input.PointerMotion{
		Position: mgl32.Vec2{float32(xpos), float32(ypos)},
		Relative: rel,
		Target:   h.pick(xpos, ypos),
	})
}

func (h *Host) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, name, ok := mouseButton(button)
	if !ok || action == glfw.Repeat {
		return
	}
	x, y := w.GetCursorPos()
	pos := mgl32.Vec2{float32(x), float32(y)}
	target := h.pick(x, y)

	if action == glfw.Press {
		h.post(input.PointerPress{Button: b, Position: pos, Target: target})
	} else {
		h.post(input.PointerRelease{Button: b, Position: pos, Target: target})
	}
	h.post(input.Trigger(h.bindings, name, action == glfw.Press)...)
}

func (h *Host) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
		return
	}
	name, ok := keyName(key)
	if !ok {
		return
	}
	h.post(input.Trigger(h.bindings, name, action == glfw.Press)...)
}

// scrollCallback reports each wheel step as a press immediately followed by
// a release.
func (h *Host) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	name, ok := wheelName(yoff)
	if !ok {
		return
	}
	h.post(input.Trigger(h.bindings, name, true)...)
	h.post(input.Trigger(h.bindings, name, false)...)
}

func (h *Host) focusCallback(w *glfw.Window, focused bool) {
	if focused {
		return
	}
	for _, a := range h.scene.Actions.Held() {
		h.post(input.ActionRelease{Action: a})
	}
}
