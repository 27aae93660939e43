package ring

// State identifies the current phase of the ring's animation cycle.
// Exactly one State is current at any time; all transitions go through
// the Controller.
type State int

const (
	StateInactive State = iota
	StateFadingIn
	StateActive
	StateFadingOut
	StateRotating
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "Inactive"
	case StateFadingIn:
		return "FadingIn"
	case StateActive:
		return "Active"
	case StateFadingOut:
		return "FadingOut"
	case StateRotating:
		return "Rotating"
	}
	return "Unknown"
}
