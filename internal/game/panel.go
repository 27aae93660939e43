package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/arcsin16/HoloRingCommand/internal/ring"
)

// tuningPanel edits a draft ring configuration with raygui sliders.
// Apply hands the draft back to the game, which rebuilds the ring.
type tuningPanel struct {
	visible bool
	draft   ring.Config
	volume  float32
}

func newTuningPanel(cfg ring.Config) *tuningPanel {
	return &tuningPanel{draft: cfg, volume: 1}
}

// draw renders the panel and returns (draft, true) when Apply was
// clicked with a valid draft.
func (p *tuningPanel) draw() (ring.Config, bool) {
	if !p.visible {
		return ring.Config{}, false
	}

	x := float32(rl.GetScreenWidth()) - 330
	bounds := rl.Rectangle{X: x, Y: 10, Width: 320, Height: 280}
	gui.GroupBox(bounds, "Ring Tuning")

	row := func(i int) rl.Rectangle {
		return rl.Rectangle{X: x + 110, Y: 30 + float32(i)*34, Width: 160, Height: 20}
	}

	count := gui.Slider(row(0), "Icons", fmt.Sprintf("%d", p.draft.Count), float32(p.draft.Count), 1, 8)
	p.draft.Count = int(count + 0.5)
	p.draft.NormalRadius = gui.Slider(row(1), "Radius", fmt.Sprintf("%.2f", p.draft.NormalRadius),
		p.draft.NormalRadius, 0.1, 0.8)
	p.draft.RotationThreshold = gui.Slider(row(2), "Threshold", fmt.Sprintf("%.3f", p.draft.RotationThreshold),
		p.draft.RotationThreshold, 0.01, 0.3)
	p.draft.FadeDuration = gui.Slider(row(3), "Fade s", fmt.Sprintf("%.2f", p.draft.FadeDuration),
		p.draft.FadeDuration, 0.05, 1)
	p.draft.RotationDuration = gui.Slider(row(4), "Rotate s", fmt.Sprintf("%.2f", p.draft.RotationDuration),
		p.draft.RotationDuration, 0.05, 1)

	p.volume = gui.Slider(row(5), "Volume", fmt.Sprintf("%.2f", p.volume), p.volume, 0, 1)

	applyBounds := rl.Rectangle{X: x + 110, Y: 30 + 6*34, Width: 160, Height: 26}
	if gui.Button(applyBounds, "Apply") && p.draft.Validate() == nil {
		return p.draft, true
	}
	return ring.Config{}, false
}
