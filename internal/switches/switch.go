// Package switches provides two-state values that toggle in place.
package switches

// Togglable flips between two states.
type Togglable interface {
	Toggle()
}

// OnOffSwitch is Off or On.
type OnOffSwitch int

const (
	Off OnOffSwitch = iota
	On
)

// Toggle flips the switch.
func (s *OnOffSwitch) Toggle() {
	if *s == Off {
		*s = On
		return
	}
	*s = Off
}

func (s OnOffSwitch) String() string {
	if s == On {
		return "On"
	}
	return "Off"
}
