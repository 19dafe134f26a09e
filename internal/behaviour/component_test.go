package behaviour

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Transform == nil {
		t.Fatal("Transform should not be nil")
	}

	if obj.Transform.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.Position)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformSetPosition(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.SetPosition(mgl32.Vec3{10, 20, 30})

	if transform.Position != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("Expected position (10,20,30), got %v", transform.Position)
	}
}

func TestTransformTranslate(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{5, 5, 5},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.Translate(mgl32.Vec3{1, 2, 3})

	expected := mgl32.Vec3{6, 7, 8}
	if transform.Position != expected {
		t.Errorf("Expected position %v, got %v", expected, transform.Position)
	}
}

func TestTransformSetScale(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.SetScale(mgl32.Vec3{2, 3, 4})

	if transform.Scale != (mgl32.Vec3{2, 3, 4}) {
		t.Errorf("Expected scale (2,3,4), got %v", transform.Scale)
	}
}

type MockComponent struct {
	BaseComponent
	startCalled  bool
	updateCalled bool
	fixedCalled  bool
	lastDt       float32
}

func (m *MockComponent) Start() {
	m.startCalled = true
}

func (m *MockComponent) Update(dt float32) {
	m.lastDt = dt
	m.updateCalled = true
}

func (m *MockComponent) FixedUpdate(dt float32) {
	m.fixedCalled = true
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)
	obj.RemoveComponent(comp)

	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components))
	}
}

type namedComponent struct {
	BaseComponent
	name      string
	destroyed bool
}

func (n *namedComponent) GetComponentType() ComponentType { return ComponentTypeScript }
func (n *namedComponent) GetTypeName() string             { return n.name }
func (n *namedComponent) OnDestroy()                      { n.destroyed = true }

func TestGameObjectHasID(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("A")

	if a.ID == "" {
		t.Fatal("GameObject should get an ID")
	}
	if a.ID == b.ID {
		t.Error("IDs should be unique")
	}
}

func TestGameObjectGetComponentByTypeName(t *testing.T) {
	obj := NewGameObject("Test")
	mock := &MockComponent{}
	lever := &namedComponent{name: "Lever"}
	obj.AddComponent(mock)
	obj.AddComponent(lever)

	if got := obj.GetComponent("Lever"); got != lever {
		t.Errorf("Expected lever component, got %v", got)
	}
	if got := obj.GetComponent("Button"); got != nil {
		t.Errorf("Expected nil for missing type, got %v", got)
	}
	if got := len(obj.GetComponents("Unknown")); got != 1 {
		t.Errorf("Expected 1 untyped component, got %d", got)
	}
	if GetComponentCategory(mock) != ComponentTypeCustom {
		t.Error("untyped component should be Custom")
	}
}

func TestComponentOf(t *testing.T) {
	obj := NewGameObject("Test")
	lever := &namedComponent{name: "Lever"}
	obj.AddComponent(&MockComponent{})
	obj.AddComponent(lever)

	got, ok := ComponentOf[*namedComponent](obj)
	if !ok || got != lever {
		t.Errorf("ComponentOf returned %v, %v", got, ok)
	}

	if _, ok := ComponentOf[*namedComponent](NewGameObject("Empty")); ok {
		t.Error("ComponentOf should fail on empty object")
	}
}

func TestRemoveComponentCallsOnDestroy(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &namedComponent{name: "X"}
	obj.AddComponent(comp)

	obj.RemoveComponent(comp)

	if !comp.destroyed {
		t.Error("OnDestroy should run on removal")
	}
}

func TestAddChildAndFind(t *testing.T) {
	parent := NewGameObject("Parent")
	child := parent.AddChild(NewGameObject("Child"))

	if child.Transform.Parent != parent.Transform {
		t.Error("child parent not set")
	}
	if parent.FindChild("Child") != child {
		t.Error("FindChild should return the child")
	}
	if parent.FindChild("Nope") != nil {
		t.Error("FindChild should return nil for unknown names")
	}

	other := NewGameObject("Other")
	other.AddChild(child)
	if len(parent.Transform.Children) != 0 {
		t.Error("reparenting should detach from old parent")
	}
}

func TestWorldPosition(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.SetPosition(mgl32.Vec3{10, 0, 0})
	child := parent.AddChild(NewGameObject("Child"))
	child.Transform.SetPosition(mgl32.Vec3{0, 2, 0})

	got := child.Transform.WorldPosition()
	if !got.ApproxEqual(mgl32.Vec3{10, 2, 0}) {
		t.Errorf("Expected (10,2,0), got %v", got)
	}
}

func TestTransformRotateAxes(t *testing.T) {
	tr := NewGameObject("T").Transform
	tr.RotateY(float32(math.Pi / 2))

	fwd := tr.Forward()
	if !fwd.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("Expected forward (-1,0,0) after +90deg yaw, got %v", fwd)
	}

	tr.SetEuler(0, 0, 0)
	if !tr.Rotation.ApproxEqual(mgl32.QuatIdent()) {
		t.Errorf("SetEuler(0,0,0) should be identity, got %v", tr.Rotation)
	}
}
