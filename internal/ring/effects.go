package ring

// SoundKind names the cue a transition wants played. Hosts with no clip
// configured for a kind treat PlaySound as a no-op; a missing sound is
// never an error.
type SoundKind int

const (
	SoundFadeIn SoundKind = iota
	SoundFadeOut
	SoundRotate
	SoundSelect
)

func (k SoundKind) String() string {
	switch k {
	case SoundFadeIn:
		return "fadeIn"
	case SoundFadeOut:
		return "fadeOut"
	case SoundRotate:
		return "rotate"
	case SoundSelect:
		return "select"
	}
	return "unknown"
}

// Effects is everything the controller asks of its host. All calls are
// fire and forget: the controller never observes a return value and
// never blocks on the host. Icon indices are always in [0, Count).
type Effects interface {
	// ShowIcon and HideIcon toggle icon i's visibility.
	ShowIcon(i int)
	HideIcon(i int)

	// SetIconVisual applies the selected or unselected appearance.
	SetIconVisual(i int, selected bool)

	// PlaceIcon positions icon i; called every tick for every visible
	// icon with the layout projector's output.
	PlaceIcon(i int, radius, angle float32)

	// PlaySound plays the cue for kind, if one is configured.
	PlaySound(kind SoundKind)

	// SpawnSelectedItem materializes the command under icon i. Invoked
	// on press while the ring is active.
	SpawnSelectedItem(i int)
}
