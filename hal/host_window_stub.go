//go:build !cgo

package hal

import "errors"

// WindowOptions configure the desktop window surface.
type WindowOptions struct {
	Options
	Scale int
	TPS   int
}

func RunWindow(_ WindowOptions, _ NewAppFunc) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
