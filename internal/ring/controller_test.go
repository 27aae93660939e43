package ring

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// mockEffects records every effect call so tests can assert on the
// command stream the controller emitted.
type mockEffects struct {
	shown   []int
	hidden  []int
	visuals []visualCall
	placed  []placeCall
	sounds  []SoundKind
	spawned []int
}

type visualCall struct {
	index    int
	selected bool
}

type placeCall struct {
	index  int
	radius float32
	angle  float32
}

func (m *mockEffects) ShowIcon(i int) { m.shown = append(m.shown, i) }
func (m *mockEffects) HideIcon(i int) { m.hidden = append(m.hidden, i) }
func (m *mockEffects) SetIconVisual(i int, selected bool) {
	m.visuals = append(m.visuals, visualCall{i, selected})
}
func (m *mockEffects) PlaceIcon(i int, radius, angle float32) {
	m.placed = append(m.placed, placeCall{i, radius, angle})
}
func (m *mockEffects) PlaySound(kind SoundKind) { m.sounds = append(m.sounds, kind) }
func (m *mockEffects) SpawnSelectedItem(i int)  { m.spawned = append(m.spawned, i) }

func (m *mockEffects) soundCount(kind SoundKind) int {
	n := 0
	for _, k := range m.sounds {
		if k == kind {
			n++
		}
	}
	return n
}

// selectedVisuals returns which icons currently hold the selected flag
// after replaying the visual call stream.
func (m *mockEffects) selectedVisuals(count int) []int {
	flags := make([]bool, count)
	for _, v := range m.visuals {
		flags[v.index] = v.selected
	}
	var out []int
	for i, f := range flags {
		if f {
			out = append(out, i)
		}
	}
	return out
}

func testController(t *testing.T, count int) (*Controller, *mockEffects) {
	t.Helper()
	fx := &mockEffects{}
	c, err := NewController(DefaultConfig(count), fx)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	return c, fx
}

// activated drives a fresh controller through the fade-in to Active.
func activated(t *testing.T, count int) (*Controller, *mockEffects) {
	t.Helper()
	c, fx := testController(t, count)
	c.Activate(Frame{Right: rl.Vector3{X: 1}})
	c.Tick(DefaultConfig(count).FadeDuration)
	if c.State() != StateActive {
		t.Fatalf("expected Active after full fade, got %v", c.State())
	}
	return c, fx
}

func TestNewControllerRejectsBadInputs(t *testing.T) {
	if _, err := NewController(Config{}, &mockEffects{}); err == nil {
		t.Error("expected error for invalid config")
	}
	if _, err := NewController(DefaultConfig(4), nil); err == nil {
		t.Error("expected error for nil effects")
	}
}

func TestActivateShowsIconsAndFadesIn(t *testing.T) {
	c, fx := testController(t, 4)

	c.Activate(Frame{Right: rl.Vector3{X: 1}})

	if c.State() != StateFadingIn {
		t.Fatalf("expected FadingIn, got %v", c.State())
	}
	if len(fx.shown) != 4 {
		t.Errorf("expected 4 show-icon calls, got %d", len(fx.shown))
	}
	if fx.soundCount(SoundFadeIn) != 1 {
		t.Errorf("expected 1 fade-in sound, got %d", fx.soundCount(SoundFadeIn))
	}
	if sel := fx.selectedVisuals(4); len(sel) != 1 || sel[0] != 0 {
		t.Errorf("expected only icon 0 selected, got %v", sel)
	}
}

func TestFadeInCompletesToActiveExactlyOnce(t *testing.T) {
	c, _ := testController(t, 4)
	c.Activate(Frame{Right: rl.Vector3{X: 1}})

	// Many small ticks whose sum comfortably exceeds the fade duration.
	transitions := 0
	prev := c.State()
	for i := 0; i < 40; i++ {
		c.Tick(0.02)
		if s := c.State(); s != prev {
			transitions++
			prev = s
		}
	}
	if prev != StateActive {
		t.Fatalf("expected Active, got %v", prev)
	}
	if transitions != 1 {
		t.Errorf("expected exactly one transition, saw %d", transitions)
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	c, fx := testController(t, 4)

	c.Activate(Frame{Right: rl.Vector3{X: 1}})
	c.Tick(0.1) // partway through the fade
	c.Activate(Frame{Right: rl.Vector3{X: 1}})

	if len(fx.shown) != 4 {
		t.Errorf("second Activate duplicated show-icon calls: %d", len(fx.shown))
	}
	if fx.soundCount(SoundFadeIn) != 1 {
		t.Errorf("second Activate replayed the fade-in sound")
	}
	// The fade keeps running from where it was rather than restarting.
	c.Tick(0.15)
	if c.State() != StateActive {
		t.Errorf("fade should have completed, state is %v", c.State())
	}
}

func TestDeactivateMidFadeInRedirectsToFadeOut(t *testing.T) {
	c, fx := testController(t, 4)
	cfg := DefaultConfig(4)

	c.Activate(Frame{Right: rl.Vector3{X: 1}})
	c.Tick(cfg.FadeDuration * 0.6) // fadeProgress now 0.4

	c.Deactivate()
	if c.State() != StateFadingOut {
		t.Fatalf("expected FadingOut, got %v", c.State())
	}
	if fx.soundCount(SoundFadeOut) != 1 {
		t.Errorf("expected 1 fade-out sound, got %d", fx.soundCount(SoundFadeOut))
	}

	// Only the remaining 0.6 of progress is left to cover; it must not
	// have snapped back to a full fade.
	c.Tick(cfg.FadeDuration * 0.7)
	if c.State() != StateInactive {
		t.Errorf("expected Inactive after partial fade-out, got %v", c.State())
	}
	if len(fx.hidden) != 4 {
		t.Errorf("expected 4 hide-icon calls, got %d", len(fx.hidden))
	}
}

func TestDeactivateWhileInactiveIsNoOp(t *testing.T) {
	c, fx := testController(t, 4)

	c.Deactivate()
	if c.State() != StateInactive {
		t.Errorf("expected Inactive, got %v", c.State())
	}
	if len(fx.sounds) != 0 {
		t.Errorf("no-op Deactivate emitted sounds: %v", fx.sounds)
	}
}

func TestGestureThresholdStartsClockwiseRotation(t *testing.T) {
	c, fx := activated(t, 4)

	c.HandMoved(0.06) // threshold is 0.05

	if c.State() != StateRotating {
		t.Fatalf("expected Rotating, got %v", c.State())
	}
	if fx.soundCount(SoundRotate) != 1 {
		t.Errorf("expected 1 rotate sound, got %d", fx.soundCount(SoundRotate))
	}

	c.Tick(DefaultConfig(4).RotationDuration)
	if c.State() != StateActive {
		t.Fatalf("expected Active after rotation, got %v", c.State())
	}
	if c.Selected() != 1 {
		t.Errorf("expected selected 1, got %d", c.Selected())
	}
	if sel := fx.selectedVisuals(4); len(sel) != 1 || sel[0] != 1 {
		t.Errorf("expected only icon 1 selected, got %v", sel)
	}
}

func TestGestureThresholdCounterClockwiseWraps(t *testing.T) {
	c, _ := activated(t, 4)

	c.HandMoved(-0.051)
	if c.State() != StateRotating {
		t.Fatalf("expected Rotating, got %v", c.State())
	}

	c.Tick(DefaultConfig(4).RotationDuration)
	if c.Selected() != 3 {
		t.Errorf("expected wraparound to 3, got %d", c.Selected())
	}
}

func TestSmallDeltasAccumulateAcrossCalls(t *testing.T) {
	c, _ := activated(t, 4)

	c.HandMoved(0.02)
	c.HandMoved(0.02)
	if c.State() != StateActive {
		t.Fatal("rotation started below threshold")
	}
	c.HandMoved(0.02)
	if c.State() != StateRotating {
		t.Error("accumulated deltas failed to start rotation")
	}
}

func TestFullRotationCycleKeepsIndicesConsistent(t *testing.T) {
	c, _ := activated(t, 4)
	dur := DefaultConfig(4).RotationDuration

	// Four clockwise steps come back around to icon 0.
	for step := 1; step <= 4; step++ {
		c.HandMoved(0.06)
		c.Tick(dur)
		if c.State() != StateActive {
			t.Fatalf("step %d: expected Active, got %v", step, c.State())
		}
		if want := step % 4; c.Selected() != want {
			t.Fatalf("step %d: expected selected %d, got %d", step, want, c.Selected())
		}
	}
}

func TestGestureIgnoredOutsideActive(t *testing.T) {
	c, fx := testController(t, 4)

	c.HandMoved(1) // Inactive
	if c.State() != StateInactive {
		t.Error("gesture while Inactive must be ignored")
	}

	c.Activate(Frame{Right: rl.Vector3{X: 1}})
	c.HandMoved(1) // FadingIn
	if c.State() != StateFadingIn {
		t.Error("gesture while FadingIn must be ignored")
	}

	c.Tick(DefaultConfig(4).FadeDuration)
	c.HandMoved(0.06)
	c.HandMoved(5) // Rotating: ignored, no second step queued
	c.Tick(DefaultConfig(4).RotationDuration)
	if c.Selected() != 1 {
		t.Errorf("gesture during rotation leaked into selection: %d", c.Selected())
	}
	if fx.soundCount(SoundRotate) != 1 {
		t.Errorf("expected 1 rotate sound, got %d", fx.soundCount(SoundRotate))
	}
}

func TestHandSampleBaselineThenDelta(t *testing.T) {
	c, _ := activated(t, 4)

	// First sample after entering Active is baseline only.
	c.HandSample(rl.Vector3{X: 10})
	if c.State() != StateActive {
		t.Fatal("baseline sample must not trigger rotation")
	}

	// Second sample's movement along the frame's right axis is the delta.
	c.HandSample(rl.Vector3{X: 10.06})
	if c.State() != StateRotating {
		t.Error("expected rotation from sampled hand movement")
	}
}

func TestHandSampleBaselineClearsAfterRotation(t *testing.T) {
	c, _ := activated(t, 4)

	c.HandSample(rl.Vector3{X: 0})
	c.HandSample(rl.Vector3{X: 0.06})
	c.Tick(DefaultConfig(4).RotationDuration)

	// The hand may have moved far while rotation played out; the next
	// sample only re-records the baseline.
	c.HandSample(rl.Vector3{X: 5})
	if c.State() != StateActive {
		t.Error("post-rotation sample must be baseline only")
	}
}

func TestPressSpawnsSelectedAndStaysActive(t *testing.T) {
	c, fx := activated(t, 4)
	c.HandMoved(0.06)
	c.Tick(DefaultConfig(4).RotationDuration)

	c.Pressed()

	if c.State() != StateActive {
		t.Errorf("press must not leave Active, got %v", c.State())
	}
	if len(fx.spawned) != 1 || fx.spawned[0] != 1 {
		t.Errorf("expected spawn of icon 1, got %v", fx.spawned)
	}
	if fx.soundCount(SoundSelect) != 1 {
		t.Errorf("expected 1 select sound, got %d", fx.soundCount(SoundSelect))
	}
}

func TestPressIgnoredOutsideActive(t *testing.T) {
	c, fx := testController(t, 4)

	c.Pressed()
	c.Activate(Frame{Right: rl.Vector3{X: 1}})
	c.Pressed() // FadingIn

	if len(fx.spawned) != 0 {
		t.Errorf("press outside Active spawned items: %v", fx.spawned)
	}
}

func TestReleaseDismissesRing(t *testing.T) {
	c, fx := activated(t, 4)

	c.Released()
	if c.State() != StateFadingOut {
		t.Fatalf("expected FadingOut, got %v", c.State())
	}
	if fx.soundCount(SoundFadeOut) != 1 {
		t.Errorf("expected 1 fade-out sound, got %d", fx.soundCount(SoundFadeOut))
	}

	c.Tick(DefaultConfig(4).FadeDuration)
	if c.State() != StateInactive {
		t.Errorf("expected Inactive, got %v", c.State())
	}
}

func TestSelectionResetsOnReactivation(t *testing.T) {
	cfg := DefaultConfig(4)
	c, _ := activated(t, 4)

	c.HandMoved(0.06)
	c.Tick(cfg.RotationDuration)
	if c.Selected() != 1 {
		t.Fatal("setup: rotation did not land on 1")
	}

	c.Deactivate()
	c.Tick(cfg.FadeDuration)
	c.Activate(Frame{Right: rl.Vector3{X: 1}})

	if c.Selected() != 0 {
		t.Errorf("expected selection reset to 0 on reactivation, got %d", c.Selected())
	}
}

func TestTickPlacesEveryIconWhileVisible(t *testing.T) {
	c, fx := testController(t, 5)

	c.Tick(0.016) // Inactive: nothing to place
	if len(fx.placed) != 0 {
		t.Errorf("Inactive tick placed icons: %d", len(fx.placed))
	}

	c.Activate(Frame{Right: rl.Vector3{X: 1}})
	c.Tick(0.016)
	if len(fx.placed) != 5 {
		t.Errorf("expected 5 placements, got %d", len(fx.placed))
	}
	for i, p := range fx.placed {
		if p.index != i {
			t.Errorf("placement %d targeted icon %d", i, p.index)
		}
	}
}

func TestTickToleratesHostileDeltas(t *testing.T) {
	c, _ := testController(t, 4)
	c.Activate(Frame{Right: rl.Vector3{X: 1}})

	c.Tick(-5)
	if c.State() != StateFadingIn {
		t.Errorf("negative dt advanced the animation: %v", c.State())
	}
	c.Tick(0.25)
	if c.State() != StateActive {
		t.Errorf("expected Active, got %v", c.State())
	}
}
