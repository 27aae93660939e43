package game

import (
	"testing"

	"github.com/arcsin16/HoloRingCommand/internal/engine"
)

func TestSpinnerRotatesAndDrops(t *testing.T) {
	obj := engine.NewGameObject("Spawned")
	obj.AddComponent(&Spinner{Speed: 90, Drop: 0.2})

	obj.Update(1)

	if obj.Transform.Rotation.Y != 90 {
		t.Errorf("expected 90 degrees, got %v", obj.Transform.Rotation.Y)
	}
	if obj.Transform.Position.Y != -0.2 {
		t.Errorf("expected Y -0.2, got %v", obj.Transform.Position.Y)
	}
}

func TestSpinnerWrapsRotation(t *testing.T) {
	obj := engine.NewGameObject("Spawned")
	obj.AddComponent(&Spinner{Speed: 200})

	obj.Update(1)
	obj.Update(1)

	if obj.Transform.Rotation.Y != 40 {
		t.Errorf("expected wrap to 40 degrees, got %v", obj.Transform.Rotation.Y)
	}
}

func TestLifetimeExpires(t *testing.T) {
	obj := engine.NewGameObject("Spawned")
	obj.AddComponent(&Lifetime{Remaining: 0.5})

	obj.Update(0.3)
	if !obj.Active {
		t.Error("object expired early")
	}
	obj.Update(0.3)
	if obj.Active {
		t.Error("object should be inactive after lifetime runs out")
	}
}
