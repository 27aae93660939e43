package ring

import "testing"

func TestGestureCrossingEmitsOnceAndResets(t *testing.T) {
	g := gestureAccumulator{threshold: 0.05}

	if dir := g.accumulate(0.03); dir != 0 {
		t.Fatalf("below threshold should not emit, got %d", dir)
	}
	if dir := g.accumulate(0.03); dir != 1 {
		t.Fatalf("expected +1 on crossing, got %d", dir)
	}
	if g.total != 0 {
		t.Errorf("expected accumulator reset after emit, got %v", g.total)
	}
}

func TestGestureNegativeCrossing(t *testing.T) {
	g := gestureAccumulator{threshold: 0.05}

	if dir := g.accumulate(-0.051); dir != -1 {
		t.Fatalf("expected -1 on negative crossing, got %d", dir)
	}
	if g.total != 0 {
		t.Errorf("expected accumulator reset after emit, got %v", g.total)
	}
}

func TestGestureOppositeDeltasCancel(t *testing.T) {
	g := gestureAccumulator{threshold: 0.05}

	g.accumulate(0.04)
	g.accumulate(-0.04)
	if dir := g.accumulate(0.04); dir != 0 {
		t.Errorf("cancelled movement should not emit, got %d", dir)
	}
}

func TestGestureExactThresholdDoesNotEmit(t *testing.T) {
	g := gestureAccumulator{threshold: 0.05}

	if dir := g.accumulate(0.05); dir != 0 {
		t.Errorf("total equal to threshold must not emit, got %d", dir)
	}
}
