package component

import "github.com/alprun/alprun/input"

// Player marks a controllable entity and carries its logical key bindings.
// Bindings are fixed for the lifetime of the component.
type Player struct {
	Binds input.Bindings
}

var PlayerComponent = NewComponent[Player]()
