package clip

import (
	"fmt"

	"golang.design/x/clipboard"
)

type systemBackend struct{}

func newSystem() (Reader, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccess, err)
	}
	return &systemBackend{}, nil
}

func (b *systemBackend) Name() string { return "system clipboard" }

// Read prefers text. An empty clipboard reads as empty text so that start-up
// with nothing copied writes nothing.
func (b *systemBackend) Read() (Value, error) {
	if text := clipboard.Read(clipboard.FmtText); text != nil {
		return TextValue(string(text)), nil
	}
	if img := clipboard.Read(clipboard.FmtImage); img != nil {
		return NonTextValue(), nil
	}
	return TextValue(""), nil
}

func (b *systemBackend) Close() {}
