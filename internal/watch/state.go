// Package watch implements the clipboard change logger: a single-threaded
// poll loop that reads the clipboard, compares it with the last observed
// value and appends changes to the log.
package watch

import (
	"go.klb.dev/cliplog/internal/clip"
	"go.klb.dev/cliplog/internal/logfile"
)

// State is the last observed clipboard value: either a text string or the
// non-text sentinel. The zero value is the initial state, empty text.
type State struct {
	text    string
	nonText bool
}

// TextState returns a state whose last observation was s.
func TextState(s string) State { return State{text: s} }

// NonTextState returns the non-text sentinel state.
func NonTextState() State { return State{nonText: true} }

// NonText reports whether the last observation was non-text.
func (s State) NonText() bool { return s.nonText }

// Text returns the last observed text. Empty when NonText is true.
func (s State) Text() string { return s.text }

// Step classifies v against s. It returns the state to commit once rec has
// been written, and the record to write, or nil when nothing changed.
func Step(s State, v clip.Value) (State, *logfile.Record) {
	switch {
	case v.Kind == clip.Text:
		if !s.nonText && s.text == v.Text {
			return s, nil
		}
		return TextState(v.Text), &logfile.Record{Text: v.Text}
	case !s.nonText:
		return NonTextState(), &logfile.Record{NonText: true}
	default:
		return s, nil
	}
}
