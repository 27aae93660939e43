// Package ring implements a radial command menu: a circle of icons
// that fades in around an anchor point, rotates one slot at a time in
// response to accumulated hand movement, and spawns the selected
// command on press. The package owns only the selection and animation
// state; rendering, audio and input devices stay behind the Effects
// interface and the controller's event methods.
package ring

import (
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame anchors hand samples to the host's view at activation time.
// Right must be the unit axis hand movement is measured along; the
// controller projects each 3D sample onto it to get a scalar delta.
type Frame struct {
	Origin rl.Vector3
	Right  rl.Vector3
}

// Controller is the composition root: it routes host events into the
// state machine, advances the animation clock every tick, and pushes
// icon placements and side effects out through Effects.
//
// All event methods and Tick lock one mutex, so a host delivering
// events from other goroutines gets them applied atomically between
// ticks. No method blocks or calls back into the host while unlocked.
type Controller struct {
	mu  sync.Mutex
	cfg Config
	fx  Effects

	state        State
	selected     int
	nextSelected int
	clock        animationClock
	gesture      gestureAccumulator

	frame    Frame
	lastHand rl.Vector3
	hasHand  bool
}

// NewController validates cfg and builds an inactive controller driving fx.
func NewController(cfg Config, fx Effects) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fx == nil {
		return nil, fmt.Errorf("ring: effects sink is required")
	}
	return &Controller{
		cfg:     cfg,
		fx:      fx,
		state:   StateInactive,
		clock:   animationClock{fadeDuration: cfg.FadeDuration, rotateDuration: cfg.RotationDuration},
		gesture: gestureAccumulator{threshold: cfg.RotationThreshold},
	}, nil
}

// Activate begins the fade-in. Only valid from Inactive; in any other
// state the call is a no-op, so a host that re-raises the request while
// an animation runs neither restarts it nor duplicates effects.
func (c *Controller) Activate(frame Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateInactive {
		return
	}

	c.frame = frame
	c.selected = 0
	c.nextSelected = 0
	c.clock.fadeProgress = 1
	c.clock.rotateProgress = 0
	c.gesture.reset()
	c.hasHand = false

	c.state = StateFadingIn
	for i := 0; i < c.cfg.Count; i++ {
		c.fx.ShowIcon(i)
		c.fx.SetIconVisual(i, i == c.selected)
	}
	c.fx.PlaySound(SoundFadeIn)
}

// Deactivate begins the fade-out from Active or FadingIn. A fade-in
// that is interrupted partway reverses from its current fadeProgress
// rather than snapping. Already Inactive or FadingOut is a no-op.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.beginFadeOut()
}

// HandMoved feeds one scalar movement delta to the gesture accumulator.
// Ignored outside Active.
func (c *Controller) HandMoved(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return
	}
	c.applyDelta(delta)
}

// HandSample feeds an absolute 3D hand position. The first sample after
// entering Active only records the baseline; later samples turn into
// deltas along the activation frame's right axis. Ignored outside Active.
func (c *Controller) HandSample(p rl.Vector3) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return
	}
	if !c.hasHand {
		c.lastHand = p
		c.hasHand = true
		return
	}
	delta := rl.Vector3DotProduct(rl.Vector3Subtract(p, c.lastHand), c.frame.Right)
	c.lastHand = p
	c.applyDelta(delta)
}

// Pressed spawns the selected command. The ring stays Active; ignored
// in every other state, since gestures can race animation completion.
func (c *Controller) Pressed() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return
	}
	c.fx.PlaySound(SoundSelect)
	c.fx.SpawnSelectedItem(c.selected)
}

// Released dismisses the ring, same as Deactivate, but only from Active.
func (c *Controller) Released() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return
	}
	c.beginFadeOut()
}

// Tick advances the animation by dt seconds and re-places every icon.
// Negative or non-finite dt counts as a zero-length frame.
func (c *Controller) Tick(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clock.advance(c.state, dt) {
		switch c.state {
		case StateFadingIn:
			c.enterActive()
		case StateFadingOut:
			c.enterInactive()
		case StateRotating:
			c.commitRotation()
		}
	}

	if c.state == StateInactive {
		return
	}
	for i := 0; i < c.cfg.Count; i++ {
		p := c.cfg.PositionOf(i, c.selected, c.nextSelected, c.clock.rotateProgress, c.clock.fadeProgress)
		c.fx.PlaceIcon(i, p.Radius, p.Angle)
	}
}

// State reports the current animation state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selected reports the index of the currently selected icon.
func (c *Controller) Selected() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// applyDelta runs the accumulator and starts a rotation step when it
// reports a threshold crossing. Caller holds the lock and has checked
// the state is Active.
func (c *Controller) applyDelta(delta float32) {
	dir := c.gesture.accumulate(delta)
	if dir == 0 {
		return
	}
	c.nextSelected = mod(c.selected+dir, c.cfg.Count)
	c.clock.rotateProgress = 0
	c.state = StateRotating
	c.fx.PlaySound(SoundRotate)
}

// beginFadeOut is the shared body of Deactivate and Released.
func (c *Controller) beginFadeOut() {
	if c.state != StateActive && c.state != StateFadingIn {
		return
	}
	c.state = StateFadingOut
	c.fx.PlaySound(SoundFadeOut)
}

// enterActive is the single entry point into Active. The accumulator
// zeroes and the hand baseline clears here, so the first sample after
// any animation completes records a baseline instead of producing a
// spurious jump.
func (c *Controller) enterActive() {
	c.state = StateActive
	c.gesture.reset()
	c.hasHand = false
}

func (c *Controller) enterInactive() {
	c.state = StateInactive
	for i := 0; i < c.cfg.Count; i++ {
		c.fx.HideIcon(i)
	}
	c.selected = 0
	c.nextSelected = 0
	c.clock.rotateProgress = 0
	c.gesture.reset()
	c.hasHand = false
}

// commitRotation lands a finished step: the target icon becomes the
// selection and its visual flag moves with it.
func (c *Controller) commitRotation() {
	old := c.selected
	c.selected = c.nextSelected
	c.clock.rotateProgress = 0
	if old != c.selected {
		c.fx.SetIconVisual(old, false)
		c.fx.SetIconVisual(c.selected, true)
	}
	c.enterActive()
}

// mod normalizes any step arithmetic into [0, n).
func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
