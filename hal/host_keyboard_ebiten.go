//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r == ' ' {
			continue
		}
		k.push(KeyEvent{Press: true, Rune: r})
	}

	keys := [...]struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeySpace, KeySpace},
		{ebiten.KeyEnter, KeyEnter},
	}
	for _, m := range keys {
		if inpututil.IsKeyJustPressed(m.key) {
			k.push(KeyEvent{Code: m.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.push(KeyEvent{Code: m.code, Press: false})
		}
	}
}
