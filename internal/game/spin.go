package game

import "github.com/arcsin16/HoloRingCommand/internal/engine"

// Spinner spins a spawned command object around the Y axis while it
// drifts downward out of the ring.
type Spinner struct {
	engine.BaseComponent
	Speed float32 // degrees per second
	Drop  float32 // meters per second
}

func (s *Spinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += s.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
	g.Transform.Position.Y -= s.Drop * deltaTime
}

// Lifetime deactivates its GameObject once the remaining time runs
// out; the game sweeps deactivated spawns from the scene.
type Lifetime struct {
	engine.BaseComponent
	Remaining float32 // seconds
}

func (l *Lifetime) Update(deltaTime float32) {
	g := l.GetGameObject()
	if g == nil {
		return
	}
	l.Remaining -= deltaTime
	if l.Remaining <= 0 {
		g.Active = false
	}
}
