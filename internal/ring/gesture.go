package ring

// gestureAccumulator integrates one-dimensional hand movement and
// reports a rotation step each time the running total crosses the
// threshold. The total zeroes after every report so a long continuous
// drag produces one step per threshold's worth of movement.
type gestureAccumulator struct {
	threshold float32
	total     float32
}

// accumulate adds delta and returns +1 or -1 when the total crosses
// the corresponding threshold, 0 otherwise.
func (g *gestureAccumulator) accumulate(delta float32) int {
	g.total += delta
	switch {
	case g.total > g.threshold:
		g.total = 0
		return 1
	case g.total < -g.threshold:
		g.total = 0
		return -1
	}
	return 0
}

func (g *gestureAccumulator) reset() {
	g.total = 0
}
