package component

// MovementState is the resolved directional intent of a character for the current tick.
type MovementState uint8

const (
	MovementNone MovementState = iota
	MovementUp
	MovementDown
	MovementLeft
	MovementRight
	MovementUpLeft
	MovementUpRight
	MovementDownLeft
	MovementDownRight
)

var movementStateNames = [...]string{
	MovementNone:      "none",
	MovementUp:        "up",
	MovementDown:      "down",
	MovementLeft:      "left",
	MovementRight:     "right",
	MovementUpLeft:    "up_left",
	MovementUpRight:   "up_right",
	MovementDownLeft:  "down_left",
	MovementDownRight: "down_right",
}

func (s MovementState) String() string {
	if int(s) < len(movementStateNames) {
		return movementStateNames[s]
	}
	return "unknown"
}

// Character holds the movement intent resolved from the owning player's bindings.
// Speed is world units per second; the translation system does not read it.
type Character struct {
	State MovementState
	Speed float64
}

var CharacterComponent = NewComponent[Character]()
