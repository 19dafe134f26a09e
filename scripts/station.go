package scripts

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/behaviour"
	"Waystation/internal/config"
)

// Station turns the sky around the player as the station rotates.
type Station struct {
	behaviour.BaseComponent

	game     *Game
	rotation mgl32.Vec3
	drift    mgl32.Vec3
}

func NewStation(p config.StationParams, game *Game) (*Station, error) {
	if game == nil {
		return nil, fmt.Errorf("%w: station needs a game", ErrMissingCollaborator)
	}
	return &Station{game: game, drift: p.Drift.Vec()}, nil
}

func (s *Station) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (s *Station) GetTypeName() string {
	return "Station"
}

// Rotate adds delta radians about X, Y and Z.
func (s *Station) Rotate(delta mgl32.Vec3) {
	s.rotation = s.rotation.Add(delta)
	s.game.SetStarRotation(s.rotation)
}

func (s *Station) Update(dt float32) {
	if s.drift != (mgl32.Vec3{}) {
		s.Rotate(s.drift.Mul(dt))
	}
}

func (s *Station) Rotation() mgl32.Vec3 {
	return s.rotation
}

func (s *Station) Retune(obj config.Object) error {
	p := config.DefaultStation()
	if err := obj.Decode(&p); err != nil {
		return err
	}
	s.drift = p.Drift.Vec()
	return nil
}
