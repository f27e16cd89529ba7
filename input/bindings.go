package input

// Bindings maps the four logical directions to physical keys.
type Bindings struct {
	Up    Key `yaml:"up"`
	Down  Key `yaml:"down"`
	Left  Key `yaml:"left"`
	Right Key `yaml:"right"`
}

// WASD is the default player binding.
var WASD = Bindings{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD}

// Held is the pressed state of each bound direction.
type Held struct {
	Up, Down, Left, Right bool
}

// Sample reads the bound keys from a snapshot.
func (b Bindings) Sample(s Snapshot) Held {
	if s == nil {
		return Held{}
	}
	return Held{
		Up:    s.Pressed(b.Up),
		Down:  s.Pressed(b.Down),
		Left:  s.Pressed(b.Left),
		Right: s.Pressed(b.Right),
	}
}

// Keys returns the four bound keys in up, down, left, right order.
func (b Bindings) Keys() [4]Key {
	return [4]Key{b.Up, b.Down, b.Left, b.Right}
}
