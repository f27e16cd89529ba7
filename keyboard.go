package main

import (
	"github.com/alprun/alprun/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var ebitenKeys = func() map[input.Key]ebiten.Key {
	m := map[input.Key]ebiten.Key{
		input.KeyArrowUp:    ebiten.KeyArrowUp,
		input.KeyArrowDown:  ebiten.KeyArrowDown,
		input.KeyArrowLeft:  ebiten.KeyArrowLeft,
		input.KeyArrowRight: ebiten.KeyArrowRight,
		input.KeySpace:      ebiten.KeySpace,
		input.KeyEscape:     ebiten.KeyEscape,
	}
	for k := input.KeyA; k <= input.KeyZ; k++ {
		m[k] = ebiten.KeyA + ebiten.Key(k-input.KeyA)
	}
	return m
}()

// Keyboard samples the physical keyboard once per tick.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Sample(uint64) (input.Snapshot, error) {
	held := input.NewKeySet()
	for key, ek := range ebitenKeys {
		if ebiten.IsKeyPressed(ek) {
			held.Press(key)
		}
	}
	return held, nil
}
