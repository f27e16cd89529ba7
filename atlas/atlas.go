// Package atlas slices a sprite sheet into a fixed grid of equally sized cells.
package atlas

import (
	"fmt"
	"image"
)

// Atlas is a row-major grid over a sheet image. Cell i sits at column i%Columns, row i/Columns.
type Atlas struct {
	// Key names the sheet so renderers can cache the GPU copy.
	Key     string
	Source  image.Image
	Columns int
	Rows    int
	CellW   int
	CellH   int
	origin  image.Point
}

// FromGrid slices img into cols×rows cells. Cell size is the sheet size divided by the grid;
// any remainder pixels on the right and bottom edges are ignored.
func FromGrid(key string, img image.Image, cols, rows int) (*Atlas, error) {
	if img == nil {
		return nil, fmt.Errorf("atlas %q: nil image", key)
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("atlas %q: invalid grid %dx%d", key, cols, rows)
	}
	b := img.Bounds()
	cw, ch := b.Dx()/cols, b.Dy()/rows
	if cw == 0 || ch == 0 {
		return nil, fmt.Errorf("atlas %q: sheet %dx%d too small for grid %dx%d", key, b.Dx(), b.Dy(), cols, rows)
	}
	return &Atlas{
		Key:     key,
		Source:  img,
		Columns: cols,
		Rows:    rows,
		CellW:   cw,
		CellH:   ch,
		origin:  b.Min,
	}, nil
}

// Len is the number of cells.
func (a *Atlas) Len() int {
	if a == nil {
		return 0
	}
	return a.Columns * a.Rows
}

// Frame returns the source rectangle of cell i.
func (a *Atlas) Frame(i int) (image.Rectangle, bool) {
	if a == nil || i < 0 || i >= a.Len() {
		return image.Rectangle{}, false
	}
	x := a.origin.X + (i%a.Columns)*a.CellW
	y := a.origin.Y + (i/a.Columns)*a.CellH
	return image.Rect(x, y, x+a.CellW, y+a.CellH), true
}

// Row returns the first cell index of row r.
func (a *Atlas) Row(r int) int {
	if a == nil {
		return 0
	}
	return r * a.Columns
}
