package ring

import "math"

// animationClock owns the two progress ratios and advances whichever
// one the current state animates. fadeProgress runs 0 (fully shown) to
// 1 (fully hidden); rotateProgress runs 0 (step start) to 1 (step
// complete).
type animationClock struct {
	fadeProgress   float32
	rotateProgress float32

	fadeDuration   float32
	rotateDuration float32
}

// advance moves the ratio owned by state and returns true when it
// crosses its terminal bound. The ratio is clamped at the bound before
// returning, so a large dt that overshoots still signals exactly once;
// the caller consumes the signal by leaving the state.
func (ac *animationClock) advance(state State, dt float32) bool {
	dt = sanitizeDelta(dt)
	switch state {
	case StateFadingIn:
		ac.fadeProgress -= dt / ac.fadeDuration
		if ac.fadeProgress <= 0 {
			ac.fadeProgress = 0
			return true
		}
	case StateFadingOut:
		ac.fadeProgress += dt / ac.fadeDuration
		if ac.fadeProgress >= 1 {
			ac.fadeProgress = 1
			return true
		}
	case StateRotating:
		ac.rotateProgress += dt / ac.rotateDuration
		if ac.rotateProgress >= 1 {
			ac.rotateProgress = 1
			return true
		}
	}
	return false
}

// sanitizeDelta clamps hostile frame times. A negative, NaN or infinite
// dt would corrupt the progress ratios, so it is treated as a zero-length
// frame instead.
func sanitizeDelta(dt float32) float32 {
	f := float64(dt)
	if dt < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return dt
}
