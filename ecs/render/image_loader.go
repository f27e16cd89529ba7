package render

import (
	"github.com/alprun/alprun/atlas"
	"github.com/hajimehoshi/ebiten/v2"
)

// Cell returns the sub-image of atlas cell i, uploading the sheet on first use.
func Cell(a *atlas.Atlas, i int) (*ebiten.Image, bool) {
	if a == nil {
		return nil, false
	}
	r, ok := a.Frame(i)
	if !ok {
		return nil, false
	}
	sheet := Upload(a.Key, a.Source)
	if sheet == nil {
		return nil, false
	}
	sub, ok := sheet.SubImage(r).(*ebiten.Image)
	return sub, ok
}
