package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// commandBackend shells out to the platform clipboard utility on every read.
type commandBackend struct {
	readAll func() (string, error)
}

func newCommand() (Reader, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("%w: no clipboard utility found (install xclip, xsel or wl-clipboard)", ErrAccess)
	}
	return &commandBackend{readAll: clipboard.ReadAll}, nil
}

func (b *commandBackend) Name() string { return "clipboard utility" }

// Read returns the clipboard as text. The utilities only expose text, so a
// failed read (e.g. an image on the clipboard under xclip) is an access error.
func (b *commandBackend) Read() (Value, error) {
	s, err := b.readAll()
	if err != nil {
		if errors.Is(err, ErrAccess) {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("%w: %w", ErrAccess, err)
	}
	return TextValue(s), nil
}

func (b *commandBackend) Close() {}
