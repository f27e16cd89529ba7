package component

import "github.com/alprun/alprun/atlas"

// AtlasSprite draws one cell of a texture atlas. Index is row-major into the atlas grid.
type AtlasSprite struct {
	Atlas       *atlas.Atlas
	Index       int
	Transparent bool
}

var AtlasSpriteComponent = NewComponent[AtlasSprite]()
