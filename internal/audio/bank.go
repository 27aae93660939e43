// Package audio maps the ring's sound cues to raylib sounds. Kinds
// with no clip loaded play nothing; the ring treats every cue as
// optional.
package audio

import (
	"log"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/arcsin16/HoloRingCommand/internal/ring"
)

// Bank holds the loaded cue sounds. Init must run after the raylib
// window exists; all methods are safe to call concurrently.
type Bank struct {
	mu     sync.Mutex
	sounds map[ring.SoundKind]rl.Sound
	open   bool
}

// NewBank initializes the audio device and returns an empty bank.
func NewBank() *Bank {
	rl.InitAudioDevice()
	return &Bank{
		sounds: make(map[ring.SoundKind]rl.Sound),
		open:   true,
	}
}

// Load reads a clip for kind from path. Returns false if the file
// could not be loaded; the kind then stays a silent no-op.
func (b *Bank) Load(kind ring.SoundKind, path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return false
	}
	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		log.Printf("audio: could not load %s clip from %s", kind, path)
		return false
	}

	if old, ok := b.sounds[kind]; ok {
		rl.UnloadSound(old)
	}
	b.sounds[kind] = sound
	return true
}

// Play fires the clip for kind, if one is loaded.
func (b *Bank) Play(kind ring.SoundKind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return
	}
	if sound, ok := b.sounds[kind]; ok {
		rl.PlaySound(sound)
	}
}

// SetVolume scales playback volume for every loaded clip.
func (b *Bank) SetVolume(volume float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sound := range b.sounds {
		rl.SetSoundVolume(sound, volume)
	}
}

// Close unloads all clips and shuts the audio device down.
func (b *Bank) Close() {
	b.mu.Lock()
	for _, sound := range b.sounds {
		rl.UnloadSound(sound)
	}
	b.sounds = nil
	b.open = false
	b.mu.Unlock()

	rl.CloseAudioDevice()
}
