//go:build !cgo

package hal

import "errors"

var errNoAudio = errors.New("audio requires cgo")

func newEbitenAudio() (Audio, error)  { return nil, errNoAudio }
func newSpeakerAudio() (Audio, error) { return nil, errNoAudio }
