package game

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/arcsin16/HoloRingCommand/internal/assets"
	"github.com/arcsin16/HoloRingCommand/internal/audio"
	"github.com/arcsin16/HoloRingCommand/internal/engine"
	"github.com/arcsin16/HoloRingCommand/internal/ring"
)

const (
	iconSize         = 0.045
	selectedIconSize = 0.06
)

// ringView is the demo's ring.Effects implementation: each icon is a
// child GameObject of the ring root, shown and placed as the controller
// dictates, and drawn as a colored sphere on the ring plane.
type ringView struct {
	root     *engine.GameObject
	icons    []*engine.GameObject
	defs     []assets.Icon
	selected []bool
	bank     *audio.Bank

	// OnSpawn fires with the icon index when the controller spawns the
	// selected command.
	OnSpawn engine.EventWithArg[int]
}

func newRingView(root *engine.GameObject, set *assets.IconSet, bank *audio.Bank) *ringView {
	v := &ringView{
		root:     root,
		icons:    make([]*engine.GameObject, len(set.Icons)),
		defs:     set.Icons,
		selected: make([]bool, len(set.Icons)),
		bank:     bank,
	}
	for i, def := range set.Icons {
		icon := engine.NewGameObject(def.Name)
		icon.Active = false // hidden until the ring fades in
		root.AddChild(icon)
		v.icons[i] = icon
	}
	return v
}

func (v *ringView) ShowIcon(i int) { v.icons[i].Active = true }

func (v *ringView) HideIcon(i int) { v.icons[i].Active = false }

func (v *ringView) SetIconVisual(i int, selected bool) { v.selected[i] = selected }

func (v *ringView) PlaceIcon(i int, radius, angle float32) {
	p := ring.Placement{Radius: radius, Angle: angle}
	v.icons[i].Transform.Position = p.Cartesian()
}

func (v *ringView) PlaySound(kind ring.SoundKind) {
	if v.bank == nil {
		return
	}
	v.bank.Play(kind)
}

func (v *ringView) SpawnSelectedItem(i int) {
	if v.OnSpawn.ListenerCount() == 0 {
		log.Printf("game: %s fired with no spawn handler", v.defs[i].Name)
		return
	}
	v.OnSpawn.Invoke(i)
}

// draw renders the visible icons. Call between BeginMode3D/EndMode3D.
func (v *ringView) draw() {
	for i, icon := range v.icons {
		if !icon.Active {
			continue
		}
		pos := icon.WorldPosition()
		color := v.defs[i].DisplayColor()
		if v.selected[i] {
			rl.DrawSphere(pos, selectedIconSize, color)
			rl.DrawSphereWires(pos, selectedIconSize*1.25, 8, 8, rl.White)
		} else {
			rl.DrawSphere(pos, iconSize, color)
		}
	}
}

// selectedName returns the label of the icon carrying the selected flag.
func (v *ringView) selectedName() string {
	for i, sel := range v.selected {
		if sel {
			return v.defs[i].Name
		}
	}
	return ""
}
