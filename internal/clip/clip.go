// Package clip provides read-only access to the system clipboard across
// platforms. Three backends are available:
//
//	system    golang.design/x/clipboard (cgo on macOS and Linux)
//	command   github.com/atotto/clipboard (pbpaste, xclip, xsel, wl-paste, win32)
//	headless  always fails with ErrAccess
package clip

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrAccess marks a platform clipboard access failure. Callers treat it as
// "no value this cycle" rather than as a fatal error.
var ErrAccess = errors.New("clipboard access failed")

// Kind classifies a clipboard observation.
type Kind int

const (
	Text Kind = iota
	NonText
)

func (k Kind) String() string {
	if k == NonText {
		return "non-text"
	}
	return "text"
}

// Value is a single clipboard observation.
type Value struct {
	Kind Kind
	Text string // only meaningful when Kind == Text
}

// TextValue returns a Text observation holding s.
func TextValue(s string) Value { return Value{Kind: Text, Text: s} }

// NonTextValue returns an observation of non-text content.
func NonTextValue() Value { return Value{Kind: NonText} }

// Reader is the interface all clipboard backends satisfy.
type Reader interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Read returns the current clipboard contents. Platform failures wrap
	// ErrAccess.
	Read() (Value, error)

	// Close releases any resources held by the backend.
	Close()
}

// Backend names accepted by New.
const (
	BackendAuto     = "auto"
	BackendSystem   = "system"
	BackendCommand  = "command"
	BackendHeadless = "headless"
)

// New returns the backend named by name. "auto" (or "") tries system, then
// command, then falls back to headless.
//
// Backend initialisation happens here rather than in init() so that commands
// which never read the clipboard (show, version) don't log spurious warnings
// on headless systems.
func New(name string) (Reader, error) {
	switch strings.ToLower(name) {
	case "", BackendAuto:
		for _, fn := range []func() (Reader, error){newSystem, newCommand} {
			r, err := fn()
			if err == nil {
				return r, nil
			}
			slog.Debug("clipboard backend unavailable", "err", err)
		}
		slog.Warn("no clipboard backend available, running headless")
		return newHeadless(), nil
	case BackendSystem:
		return newSystem()
	case BackendCommand:
		return newCommand()
	case BackendHeadless:
		return newHeadless(), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q (want auto|system|command|headless)", name)
	}
}
