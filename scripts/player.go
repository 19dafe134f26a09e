package scripts

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
	"Waystation/internal/input"
	"Waystation/internal/logger"
	"Waystation/internal/mathx"
	"Waystation/internal/physics"
)

// ZoomMin is the narrowest field of view zoom can reach.
const ZoomMin float32 = 5

// Player actions.
const (
	ActionLeft          = "player_left"
	ActionRight         = "player_right"
	ActionForward       = "player_forward"
	ActionBackward      = "player_backward"
	ActionPrecisionMode = "precision_mode"
	ActionZoomIn        = "precision_mode_zoom_in"
	ActionZoomOut       = "precision_mode_zoom_out"
)

// Lens is the camera the player looks through. *camera.Camera implements it.
type Lens interface {
	SetFov(fov float32)
	Pitch() float32
	SetPitch(pitch float32)
}

type PlayerDeps struct {
	Router  *input.Router
	Actions input.Actions
	Capture input.CaptureSetter
	Body    physics.Solver
	Camera  Lens
}

// Player is a first person controller with a precision mode that frees the
// pointer and allows zooming.
type Player struct {
	behaviour.BaseComponent

	fov              float32
	baseFov          float32
	speed            float32
	mouseSensitivity float32
	zoomStep         float32
	zoomEnabled      bool
	lookInPrecision  bool
	inPrecisionMode  bool
	yaw              float32

	router  *input.Router
	actions input.Actions
	capture input.CaptureSetter
	body    physics.Solver
	camera  Lens
	sub     input.Subscription
}

func NewPlayer(p config.PlayerParams, deps PlayerDeps) (*Player, error) {
	switch {
	case deps.Router == nil:
		return nil, fmt.Errorf("%w: player needs an input router", ErrMissingCollaborator)
	case deps.Actions == nil:
		return nil, fmt.Errorf("%w: player needs an action source", ErrMissingCollaborator)
	case deps.Capture == nil:
		return nil, fmt.Errorf("%w: player needs pointer capture", ErrMissingCollaborator)
	case deps.Body == nil:
		return nil, fmt.Errorf("%w: player needs a movement solver", ErrMissingCollaborator)
	case deps.Camera == nil:
		return nil, fmt.Errorf("%w: player needs a camera", ErrMissingCollaborator)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	pl := &Player{
		baseFov: p.Fov,
		router:  deps.Router,
		actions: deps.Actions,
		capture: deps.Capture,
		body:    deps.Body,
		camera:  deps.Camera,
	}
	pl.tune(p)
	pl.SetFov(p.Fov)
	pl.sub = deps.Router.Subscribe(pl.HandleInput)
	return pl, nil
}

func (pl *Player) tune(p config.PlayerParams) {
	pl.speed = p.Speed
	pl.mouseSensitivity = p.MouseSensitivity
	pl.zoomStep = p.ZoomStep
	pl.zoomEnabled = p.ZoomEnabled
	pl.lookInPrecision = p.LookInPrecisionMode
}

func (pl *Player) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (pl *Player) GetTypeName() string {
	return "Player"
}

func (pl *Player) Start() {
	pl.capture.SetCaptureMode(input.CaptureCaptured)
	if obj := pl.GetGameObject(); obj != nil {
		pl.yaw = yawOf(obj.Transform.Rotation)
	}
}

// HandleInput reacts to look motion, precision mode and zoom.
func (pl *Player) HandleInput(ev input.Event) {
	switch e := ev.(type) {
	case input.PointerMotion:
		if !pl.inPrecisionMode || pl.lookInPrecision {
			pl.look(e.Relative)
		}
	case input.ActionPress:
		if e.Action == ActionPrecisionMode && !pl.inPrecisionMode {
			pl.EnterPrecisionMode()
		}
		if !pl.inPrecisionMode || !pl.zoomEnabled {
			return
		}
		switch e.Action {
		case ActionZoomIn:
			pl.ZoomIn()
		case ActionZoomOut:
			pl.ZoomOut()
		}
	case input.ActionRelease:
		if e.Action == ActionPrecisionMode && pl.inPrecisionMode {
			pl.ExitPrecisionMode()
		}
	}
}

func (pl *Player) look(rel mgl32.Vec2) {
	turn := rel.Mul(-pl.mouseSensitivity)

	pl.yaw += turn.X()
	if obj := pl.GetGameObject(); obj != nil {
		obj.Transform.SetEuler(0, pl.yaw, 0)
	}

	pitch := mathx.Clamp(pl.camera.Pitch()+turn.Y(), -0.5*math.Pi, 0.5*math.Pi)
	pl.camera.SetPitch(pitch)
}

// FixedUpdate steers the body from the movement actions.
func (pl *Player) FixedUpdate(dt float32) {
	velocity := pl.body.Velocity()
	if !pl.body.OnFloor() {
		velocity = velocity.Add(pl.body.Gravity().Mul(dt))
	}

	dir := pl.Direction()
	if dir.Len() > 0 {
		velocity[0] = dir.X() * pl.speed * dt
		velocity[2] = dir.Z() * pl.speed * dt
	} else {
		previous := pl.body.Velocity()
		velocity[0] = mathx.MoveToward(previous.X(), 0, pl.speed*dt)
		velocity[2] = mathx.MoveToward(previous.Z(), 0, pl.speed*dt)
	}

	pl.body.Move(velocity, dt)
}

// Direction is the normalised movement direction in world space, zero when no
// movement action is held.
func (pl *Player) Direction() mgl32.Vec3 {
	in := pl.actions.Vector(ActionLeft, ActionRight, ActionForward, ActionBackward)
	local := mgl32.Vec3{in.X(), 0, in.Y()}
	if local.Len() == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.QuatRotate(pl.yaw, mgl32.Vec3{0, 1, 0}).Rotate(local).Normalize()
}

func (pl *Player) EnterPrecisionMode() {
	pl.inPrecisionMode = true
	pl.capture.SetCaptureMode(input.CaptureConfined)
	logger.Log.Debug("Precision mode entered")
}

func (pl *Player) ExitPrecisionMode() {
	pl.inPrecisionMode = false
	pl.capture.SetCaptureMode(input.CaptureCaptured)
	pl.SetFov(pl.baseFov)
	logger.Log.Debug("Precision mode left")
}

func (pl *Player) ZoomIn() {
	pl.SetFov(pl.fov - pl.zoomStep)
}

func (pl *Player) ZoomOut() {
	pl.SetFov(pl.fov + pl.zoomStep)
}

// SetFov clamps fov to [ZoomMin, base fov] and applies it to the camera.
func (pl *Player) SetFov(fov float32) {
	pl.fov = mathx.Clamp(fov, ZoomMin, pl.baseFov)
	pl.camera.SetFov(pl.fov)
}

func (pl *Player) Fov() float32 {
	return pl.fov
}

func (pl *Player) BaseFov() float32 {
	return pl.baseFov
}

func (pl *Player) InPrecisionMode() bool {
	return pl.inPrecisionMode
}

func (pl *Player) Yaw() float32 {
	return pl.yaw
}

// Retune applies new movement and look settings. A changed fov becomes the new
// base and resets any zoom.
func (pl *Player) Retune(obj config.Object) error {
	p := config.DefaultPlayer()
	if err := obj.Decode(&p); err != nil {
		return err
	}
	pl.tune(p)
	if p.Fov != pl.baseFov {
		pl.baseFov = p.Fov
		pl.SetFov(p.Fov)
		logger.Log.Info("Player fov retuned", zap.Float32("fov", p.Fov))
	}
	return nil
}

func (pl *Player) OnDestroy() {
	pl.router.Unsubscribe(pl.sub)
}

// yawOf extracts the rotation about Y from q.
func yawOf(q mgl32.Quat) float32 {
	fwd := q.Rotate(mgl32.Vec3{0, 0, -1})
	return float32(math.Atan2(float64(-fwd.X()), float64(-fwd.Z())))
}
