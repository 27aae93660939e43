package ring

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Placement is one icon's polar position on the ring plane.
// Angle is in degrees; 0 points along +X and the selected slot sits at
// -90, the bottom of the circle in the controller's local frame.
type Placement struct {
	Radius float32
	Angle  float32
}

// Cartesian converts the placement to a point on the ring plane (Z = 0)
// in the controller's local frame.
func (p Placement) Cartesian() rl.Vector3 {
	rad := float64(p.Angle) * math.Pi / 180
	return rl.Vector3{
		X: p.Radius * float32(math.Cos(rad)),
		Y: p.Radius * float32(math.Sin(rad)),
	}
}

// PositionOf computes icon i's placement from the animation ratios.
// It is a pure function of its arguments: identical inputs always give
// identical output.
//
// During rotation the anchor index is the linear blend of selected and
// nextSelected, so all icons sweep together; outside rotation the two
// indices are equal and the blend is exact. Layout is recomputed with
// the same formula every tick in every state on purpose, so fading and
// rotating never need separate code paths.
func (c Config) PositionOf(i, selected, nextSelected int, rotateProgress, fadeProgress float32) Placement {
	n := float32(c.Count)
	anchor := float32(selected) + (float32(nextSelected)-float32(selected))*rotateProgress
	blendIndex := wrap(float32(i)-anchor, n)

	angle := -90 + blendIndex*360/n
	angle += fadeProgress * c.FadeAngleDelta / c.FadeDuration
	radius := c.NormalRadius + fadeProgress*c.FadeRadiusDelta/c.FadeDuration

	return Placement{Radius: radius, Angle: angle}
}

// wrap maps x into [0, n) like a positive modulo.
func wrap(x, n float32) float32 {
	m := float32(math.Mod(float64(x), float64(n)))
	if m < 0 {
		m += n
	}
	return m
}
