package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// recoverFrame turns a panic inside Step into an error, logs the stack and paints
// it on the framebuffer so the last thing the surface shows is the failure.
func (a *App) recoverFrame(errp *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	a.log.Error("frame panic",
		zap.Any("panic", v),
		zap.Uint64("frame", a.state.Frame),
		zap.ByteString("stack", stack),
	)
	a.paintPanic(v, stack)
	*errp = fmt.Errorf("frame %d panicked: %v", a.state.Frame, v)
}

func (a *App) paintPanic(v any, stack []byte) {
	if a.fb == nil {
		return
	}
	a.fb.ClearRGB(255, 255, 255)

	lines := []string{"panic:", fmt.Sprint(v)}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", " "))
		}
	}

	d := &fbDisplayer{fb: a.fb}
	fg := color.RGBA{A: 255}
	cols := max(int16(a.fb.Width()/4)-1, 1)
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y+hudLineGap) > a.fb.Height() {
				_ = a.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			a.drawText(d, 0, y, chunk, fg)
			y += hudLineGap
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = a.fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
