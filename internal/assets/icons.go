// Package assets loads the command-icon definitions the demo places on
// the ring.
package assets

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Icon describes one command slot: its label, display color and the
// model spawned when the command fires.
type Icon struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Model string `json:"model,omitempty"`
}

// IconSet is the ordered list of icons on the ring. Index i here is
// icon index i everywhere in the ring package.
type IconSet struct {
	Icons []Icon `json:"icons"`
}

// Color name mapping for icon definitions
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Violet":    rl.Violet,
}

// DisplayColor resolves the icon's color name; unknown names render white.
func (ic Icon) DisplayColor() rl.Color {
	if c, ok := colorByName[ic.Color]; ok {
		return c
	}
	return rl.White
}

// LoadIconSet reads icon definitions from a JSON file and checks them
// against the ring's configured slot count.
func LoadIconSet(path string, count int) (*IconSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read icon set: %w", err)
	}
	var set IconSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("assets: parse icon set %s: %w", path, err)
	}
	if len(set.Icons) != count {
		return nil, fmt.Errorf("assets: icon set has %d icons, ring expects %d", len(set.Icons), count)
	}
	return &set, nil
}

// DefaultIconSet returns count placeholder icons for running the demo
// without an icon file.
func DefaultIconSet(count int) *IconSet {
	palette := []string{"Red", "Blue", "Green", "Orange", "Purple", "Gold", "SkyBlue", "Pink"}
	set := &IconSet{Icons: make([]Icon, count)}
	for i := range set.Icons {
		set.Icons[i] = Icon{
			Name:  fmt.Sprintf("Command %d", i),
			Color: palette[i%len(palette)],
		}
	}
	return set
}
