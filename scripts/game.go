package scripts

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
)

// Shader parameter names the sky reads.
const (
	ParamStars     = "stars"
	ParamStarCount = "star_count"
)

// ShaderParams receives uniforms for the sky material.
type ShaderParams interface {
	SetShaderParam(name string, value any)
}

// Game owns the star catalogue and feeds star directions to the sky.
type Game struct {
	behaviour.BaseComponent

	systemStar config.Star
	stars      []config.Star
	sky        ShaderParams
	rotation   mgl32.Vec3
}

func NewGame(p config.GameParams, sky ShaderParams) (*Game, error) {
	if sky == nil {
		return nil, fmt.Errorf("%w: game needs a sky material", ErrMissingCollaborator)
	}
	return &Game{
		systemStar: p.SystemStar,
		stars:      p.Stars,
		sky:        sky,
	}, nil
}

func (g *Game) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (g *Game) GetTypeName() string {
	return "Game"
}

func (g *Game) Start() {
	g.SetStarRotation(mgl32.Vec3{})
}

// SetStarRotation turns every star about UP by rot.Y, then RIGHT by rot.X,
// then BACK by rot.Z and sends the normalised directions to the sky.
func (g *Game) SetStarRotation(rot mgl32.Vec3) {
	g.rotation = rot
	dirs := make([]mgl32.Vec3, len(g.stars))
	for i, s := range g.stars {
		dirs[i] = StarDirection(s.Position.Vec(), rot)
	}
	g.sky.SetShaderParam(ParamStars, dirs)
	g.sky.SetShaderParam(ParamStarCount, uint64(len(dirs)))
}

// StarDirection rotates pos as SetStarRotation does. A star at the origin has
// no direction and stays zero.
func StarDirection(pos, rot mgl32.Vec3) mgl32.Vec3 {
	v := mgl32.QuatRotate(rot.Y(), mgl32.Vec3{0, 1, 0}).Rotate(pos)
	v = mgl32.QuatRotate(rot.X(), mgl32.Vec3{1, 0, 0}).Rotate(v)
	v = mgl32.QuatRotate(rot.Z(), mgl32.Vec3{0, 0, 1}).Rotate(v)
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

func (g *Game) StarRotation() mgl32.Vec3 {
	return g.rotation
}

func (g *Game) SystemStar() config.Star {
	return g.systemStar
}

func (g *Game) Stars() []config.Star {
	return g.stars
}

func (g *Game) Retune(obj config.Object) error {
	p := config.DefaultGame()
	if err := obj.Decode(&p); err != nil {
		return err
	}
	g.systemStar, g.stars = p.SystemStar, p.Stars
	g.SetStarRotation(g.rotation)
	return nil
}
