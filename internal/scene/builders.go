package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/anim"
	"Waystation/internal/behaviour"
	"Waystation/internal/camera"
	"Waystation/internal/config"
	"Waystation/internal/picking"
	"Waystation/internal/ui"
	"Waystation/scripts"
)

func child(owner *behaviour.GameObject, name string, pos mgl32.Vec3) *behaviour.GameObject {
	c := behaviour.NewGameObject(owner.Name + "/" + name)
	c.Transform.SetPosition(pos)
	owner.AddChild(c)
	return c
}

// addArea registers a pickable sphere around owner under the object's name.
func (s *Scene) addArea(owner *behaviour.GameObject, radius float32) string {
	s.Picker.Add(&picking.Area{Name: owner.Name, Transform: owner.Transform, Radius: radius})
	return owner.Name
}

func buildButton(s *Scene, obj config.Object, owner *behaviour.GameObject) (behaviour.Component, error) {
	p := config.DefaultButton()
	if err := obj.Decode(&p); err != nil {
		return nil, err
	}

	knob := child(owner, "cap", mgl32.Vec3{})
	tween := anim.NewPlayer(knob.Transform, anim.ButtonClips(p.PressDepth, p.PressTime)...)
	knob.AddComponent(tween)

	var cues anim.CuePlayer = tween
	if p.Sound && s.env.Sound != nil {
		cues = anim.Fanout{tween, s.env.Sound}
	}

	return scripts.NewButton(p, scripts.ButtonDeps{
		Router: s.Router,
		Area:   s.addArea(owner, p.HitRadius),
		Cues:   cues,
	})
}

func buildLever(s *Scene, obj config.Object, owner *behaviour.GameObject) (behaviour.Component, error) {
	p := config.DefaultLever()
	if err := obj.Decode(&p); err != nil {
		return nil, err
	}
	handle := child(owner, "handle", mgl32.Vec3{})
	return scripts.NewLever(p, scripts.LeverDeps{
		Router: s.Router,
		Area:   s.addArea(owner, p.HitRadius),
		Handle: handle.Transform,
	})
}

func buildJumpgate(s *Scene, obj config.Object, owner *behaviour.GameObject) (behaviour.Component, error) {
	p := config.DefaultJumpgate()
	if err := obj.Decode(&p); err != nil {
		return nil, err
	}
	return scripts.NewJumpgate(p, scripts.JumpgateDeps{
		Inner: child(owner, "inner_ring", mgl32.Vec3{}).Transform,
		Outer: child(owner, "outer_ring", mgl32.Vec3{}).Transform,
	})
}

// buildPlayer attaches a physics body to the owner and puts the camera on a
// child at eye height.
func buildPlayer(s *Scene, obj config.Object, owner *behaviour.GameObject) (behaviour.Component, error) {
	p := config.DefaultPlayer()
	if err := obj.Decode(&p); err != nil {
		return nil, err
	}
	if s.Camera != nil {
		return nil, fmt.Errorf("only one player per scene")
	}

	body := s.World.NewBody(obj.Position.Vec(), p.Radius)
	owner.AddComponent(body)

	eye := child(owner, "camera", mgl32.Vec3{0, p.EyeHeight, 0})
	cam := camera.NewCamera(s.env.Width, s.env.Height)
	eye.AddComponent(cam)

	pl, err := scripts.NewPlayer(p, scripts.PlayerDeps{
		Router:  s.Router,
		Actions: s.Actions,
		Capture: s.env.Capture,
		Body:    body,
		Camera:  cam,
	})
	if err != nil {
		return nil, err
	}
	s.Camera = cam
	return pl, nil
}

func buildScreen(s *Scene, obj config.Object, owner *behaviour.GameObject) (behaviour.Component, error) {
	p := config.DefaultScreen()
	if err := obj.Decode(&p); err != nil {
		return nil, err
	}
	return scripts.NewScreen(p, scripts.ScreenDeps{
		Viewport: ui.NewViewport(),
		Sprite:   ui.NewSprite(),
	})
}

func buildGame(s *Scene, obj config.Object, owner *behaviour.GameObject) (behaviour.Component, error) {
	p := config.DefaultGame()
	if err := obj.Decode(&p); err != nil {
		return nil, err
	}
	return scripts.NewGame(p, s.env.Sky)
}

func buildStation(s *Scene, obj config.Object, owner *behaviour.GameObject) (behaviour.Component, error) {
	p := config.DefaultStation()
	if err := obj.Decode(&p); err != nil {
		return nil, err
	}

	var game *scripts.Game
	if p.Game != "" {
		e, err := s.resolve(p.Game)
		if err != nil {
			return nil, err
		}
		g, ok := e.Script.(*scripts.Game)
		if !ok {
			return nil, fmt.Errorf("%w: %q is a %s, not a game", scripts.ErrMissingCollaborator, p.Game, e.Config.Kind)
		}
		game = g
	}
	return scripts.NewStation(p, game)
}
