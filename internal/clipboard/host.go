package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrHostUnavailable is returned by hosts that have no system clipboard.
var ErrHostUnavailable = errors.New("host clipboard unavailable")

// Host is the operating system clipboard the slot is mirrored to.
type Host interface {
	WriteText(text string) error
	ReadText() (string, error)
}

// SystemHost talks to the platform clipboard (pbcopy, xclip, wl-copy, ...)
type SystemHost struct{}

func (SystemHost) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrHostUnavailable
	}
	return clipboard.WriteAll(text)
}

func (SystemHost) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrHostUnavailable
	}
	return clipboard.ReadAll()
}

// NopHost discards writes and reads nothing
type NopHost struct{}

func (NopHost) WriteText(string) error    { return nil }
func (NopHost) ReadText() (string, error) { return "", nil }
