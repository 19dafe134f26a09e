package behaviour

import (
	"testing"
)

func TestComponentManagerRegister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 1 {
		t.Errorf("Expected 1 registered object, got %d", len(all))
	}
}

func TestComponentManagerUnregister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)
	cm.UnregisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Expected 0 objects after unregister, got %d", len(all))
	}
}

func TestComponentManagerUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)

	if !comp.updateCalled {
		t.Error("Update() was not called on component")
	}
}

func TestComponentManagerFixedUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.FixedUpdateAll(0.02)

	if !comp.fixedCalled {
		t.Error("FixedUpdate() was not called on component")
	}
}

func TestComponentManagerInactiveObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	obj.Active = false
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)

	if comp.updateCalled {
		t.Error("Update() should not be called on inactive object")
	}
}

func TestComponentManagerFindGameObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("FindMe")
	cm.RegisterGameObject(obj)

	found := cm.FindGameObject("FindMe")

	if found == nil {
		t.Error("FindGameObject should find registered object")
	}
	if found != obj {
		t.Error("FindGameObject returned wrong object")
	}
}

func TestComponentManagerFindGameObjectNotFound(t *testing.T) {
	cm := NewComponentManager()

	found := cm.FindGameObject("NotHere")

	if found != nil {
		t.Error("FindGameObject should return nil for non-existent object")
	}
}

func TestComponentManagerClear(t *testing.T) {
	cm := NewComponentManager()
	cm.RegisterGameObject(NewGameObject("A"))
	cm.RegisterGameObject(NewGameObject("B"))

	cm.Clear()

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Clear should remove all objects, got %d", len(all))
	}
}

func TestComponentManagerPassesDeltaTime(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.25)

	if comp.lastDt != 0.25 {
		t.Errorf("Expected dt 0.25, got %v", comp.lastDt)
	}
}

func TestComponentManagerRegistersChildren(t *testing.T) {
	cm := NewComponentManager()
	parent := NewGameObject("Parent")
	child := parent.AddChild(NewGameObject("Child"))
	comp := &MockComponent{}
	child.AddComponent(comp)

	cm.RegisterGameObject(parent)

	if cm.FindGameObject("Child") != child {
		t.Error("child should be registered with its parent")
	}
	if !comp.startCalled {
		t.Error("Start should run on child components")
	}
}

func TestComponentManagerDeferredDestroy(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Doomed")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.DestroyGameObject(obj)
	if cm.FindGameObject("Doomed") == nil {
		t.Fatal("destroy should be deferred to the next update")
	}

	cm.UpdateAll(0.016)

	if cm.FindGameObject("Doomed") != nil {
		t.Error("object should be gone after update")
	}
	if comp.updateCalled {
		t.Error("destroyed object should not be updated")
	}
}

func TestComponentManagerFindWithTag(t *testing.T) {
	cm := NewComponentManager()
	a := NewGameObject("A")
	a.Tag = "control"
	b := NewGameObject("B")
	b.Tag = "control"
	cm.RegisterGameObject(a)
	cm.RegisterGameObject(b)
	cm.RegisterGameObject(NewGameObject("C"))

	if got := len(cm.FindGameObjectsWithTag("control")); got != 2 {
		t.Errorf("Expected 2 tagged objects, got %d", got)
	}
}
