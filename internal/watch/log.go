package watch

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"go.klb.dev/cliplog/internal/logfile"
)

const previewLen = 120

// logDetected logs a detected change at INFO and, for text, a preview of up
// to previewLen runes at DEBUG.
func logDetected(rec logfile.Record) {
	if rec.NonText {
		slog.Info("non-text content detected")
		return
	}
	slog.Info("new clipboard content detected", "bytes", len(rec.Text))

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	slog.Debug("clipboard text", "preview", preview(rec.Text))
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}
	r := []rune(s)
	return string(r[:previewLen]) + "…"
}
