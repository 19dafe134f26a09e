package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Component is the base interface for all components
// Components are attached to game objects and driven by the ComponentManager
type Component interface {
	// Lifecycle methods
	Awake()                 // Called when component is attached
	Start()                 // Called once the object is registered with a manager
	Update(dt float32)      // Called every frame
	FixedUpdate(dt float32) // Called on the physics step, after input for the frame
	OnDestroy()             // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// Scripts embed this and only override what they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()                 {}
func (c *BaseComponent) Start()                 {}
func (c *BaseComponent) Update(dt float32)      {}
func (c *BaseComponent) FixedUpdate(dt float32) {}
func (c *BaseComponent) OnDestroy()             {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject represents an object in the scene
type GameObject struct {
	ID         string
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
}

// Transform holds the local pose of an object relative to its parent
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
	Children []*Transform
	object   *GameObject
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

// Rotate applies a rotation about a local axis
func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	rotation := mgl32.QuatRotate(angle, axis)
	t.Rotation = t.Rotation.Mul(rotation).Normalize()
}

func (t *Transform) RotateX(angle float32) { t.Rotate(mgl32.Vec3{1, 0, 0}, angle) }
func (t *Transform) RotateY(angle float32) { t.Rotate(mgl32.Vec3{0, 1, 0}, angle) }
func (t *Transform) RotateZ(angle float32) { t.Rotate(mgl32.Vec3{0, 0, 1}, angle) }

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

// SetEuler replaces the rotation with X, then Y, then Z rotations in radians
func (t *Transform) SetEuler(x, y, z float32) {
	t.Rotation = mgl32.AnglesToQuat(x, y, z, mgl32.XYZ)
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// LocalMatrix composes translation, rotation and scale
func (t *Transform) LocalMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// WorldMatrix walks up the parent chain
func (t *Transform) WorldMatrix() mgl32.Mat4 {
	m := t.LocalMatrix()
	for p := t.Parent; p != nil; p = p.Parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the origin of the transform in world space
func (t *Transform) WorldPosition() mgl32.Vec3 {
	return mgl32.TransformCoordinate(mgl32.Vec3{}, t.WorldMatrix())
}

// GameObject returns the object that owns this transform
func (t *Transform) GameObject() *GameObject {
	return t.object
}

// GameObject methods
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		ID:         uuid.NewString(),
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.object = obj
	return obj
}

// AddChild parents child under obj and returns child for chaining
func (obj *GameObject) AddChild(child *GameObject) *GameObject {
	if child.Transform.Parent != nil {
		child.Transform.Parent.removeChild(child.Transform)
	}
	child.Transform.Parent = obj.Transform
	obj.Transform.Children = append(obj.Transform.Children, child.Transform)
	return child
}

func (t *Transform) removeChild(child *Transform) {
	for i, c := range t.Children {
		if c == child {
			t.Children = append(t.Children[:i], t.Children[i+1:]...)
			return
		}
	}
}

// FindChild looks up a direct child by name
func (obj *GameObject) FindChild(name string) *GameObject {
	for _, c := range obj.Transform.Children {
		if c.object != nil && c.object.Name == name {
			return c.object
		}
	}
	return nil
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

// GetComponent returns the first component whose type name matches
func (obj *GameObject) GetComponent(typeName string) Component {
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			return comp
		}
	}
	return nil
}

// GetComponents returns every component whose type name matches
func (obj *GameObject) GetComponents(typeName string) []Component {
	var result []Component
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			result = append(result, comp)
		}
	}
	return result
}

// ComponentOf returns the first component of type T
func ComponentOf[T Component](obj *GameObject) (T, bool) {
	for _, comp := range obj.Components {
		if c, ok := comp.(T); ok {
			return c, true
		}
	}
	var zero T
	return zero, false
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

func (obj *GameObject) internalUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(dt)
		}
	}
}

func (obj *GameObject) internalFixedUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate(dt)
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
