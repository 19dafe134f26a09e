package scripts

import (
	"github.com/go-gl/mathgl/mgl32"

	"Waystation/internal/behaviour"
)

type cueRecorder struct {
	cues []string
}

func (r *cueRecorder) Play(cue string) {
	r.cues = append(r.cues, cue)
}

type fakeLens struct {
	fov   float32
	pitch float32
}

func (l *fakeLens) SetFov(fov float32)     { l.fov = fov }
func (l *fakeLens) Pitch() float32         { return l.pitch }
func (l *fakeLens) SetPitch(pitch float32) { l.pitch = pitch }

// fakeSolver records the last requested velocity and echoes it back.
type fakeSolver struct {
	velocity mgl32.Vec3
	onFloor  bool
	gravity  mgl32.Vec3
	moves    []mgl32.Vec3
}

func (s *fakeSolver) Move(v mgl32.Vec3, dt float32) mgl32.Vec3 {
	s.moves = append(s.moves, v)
	s.velocity = v
	return v
}

func (s *fakeSolver) OnFloor() bool         { return s.onFloor }
func (s *fakeSolver) Velocity() mgl32.Vec3 { return s.velocity }
func (s *fakeSolver) Gravity() mgl32.Vec3  { return s.gravity }

type fakeActions struct {
	held map[string]bool
}

func (a *fakeActions) Pressed(action string) bool {
	return a.held[action]
}

func (a *fakeActions) Vector(negX, posX, negY, posY string) mgl32.Vec2 {
	v := mgl32.Vec2{}
	if a.held[negX] {
		v[0]--
	}
	if a.held[posX] {
		v[0]++
	}
	if a.held[negY] {
		v[1]--
	}
	if a.held[posY] {
		v[1]++
	}
	return v
}

type skyRecorder struct {
	params map[string]any
}

func (s *skyRecorder) SetShaderParam(name string, value any) {
	if s.params == nil {
		s.params = make(map[string]any)
	}
	s.params[name] = value
}

// counter counts emissions of a named signal.
func counter(t interface{ Fatalf(string, ...any) }, e behaviour.SignalEmitter, name string) *int {
	sig, ok := e.Signal(name)
	if !ok {
		t.Fatalf("signal %q not found", name)
	}
	n := new(int)
	sig.Connect(func() { *n++ })
	return n
}
