package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/arcsin16/HoloRingCommand/internal/assets"
	"github.com/arcsin16/HoloRingCommand/internal/game"
	"github.com/arcsin16/HoloRingCommand/internal/ring"
)

func main() {
	var (
		configPath = flag.String("config", "", "ring config JSON (defaults built in)")
		iconsPath  = flag.String("icons", "", "icon set JSON (placeholders generated if empty)")
		soundDir   = flag.String("sounds", "", "directory with fade_in/fade_out/rotate/select wav clips")
		count      = flag.Int("count", 6, "icon count when no config file is given")
		trackerAdr = flag.String("tracker", "", "listen address for the websocket hand tracker (e.g. :8591)")
	)
	flag.Parse()

	cfg := ring.DefaultConfig(*count)
	if *configPath != "" {
		loaded, err := ring.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("holoring: %v", err)
		}
		cfg = loaded
	}

	var icons *assets.IconSet
	if *iconsPath != "" {
		loaded, err := assets.LoadIconSet(*iconsPath, cfg.Count)
		if err != nil {
			log.Fatalf("holoring: %v", err)
		}
		icons = loaded
	}

	var sounds map[ring.SoundKind]string
	if *soundDir != "" {
		sounds = map[ring.SoundKind]string{
			ring.SoundFadeIn:  filepath.Join(*soundDir, "fade_in.wav"),
			ring.SoundFadeOut: filepath.Join(*soundDir, "fade_out.wav"),
			ring.SoundRotate:  filepath.Join(*soundDir, "rotate.wav"),
			ring.SoundSelect:  filepath.Join(*soundDir, "select.wav"),
		}
	}

	g, err := game.New(game.Options{
		Config:      cfg,
		Icons:       icons,
		Sounds:      sounds,
		TrackerAddr: *trackerAdr,
	})
	if err != nil {
		log.Fatalf("holoring: %v", err)
	}
	if err := g.Run(); err != nil {
		log.Fatalf("holoring: %v", err)
	}
}
