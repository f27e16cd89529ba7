package component

import "github.com/alprun/alprun/levels"

// TileMap places a loaded level in the world. With Center set the map's middle sits on the
// entity's transform; otherwise the transform is the map's top-left corner.
type TileMap struct {
	Name   string
	Level  *levels.Level
	Center bool
}

var TileMapComponent = NewComponent[TileMap]()
