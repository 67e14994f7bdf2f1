package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.klb.dev/cliplog/internal/clip"
	"go.klb.dev/cliplog/internal/logfile"
)

// DefaultInterval is the pause between poll cycles.
const DefaultInterval = time.Second

// Sink receives log records. Failures that wrap *logfile.WriteError are
// recoverable; anything else stops the poller.
type Sink interface {
	Append(rec logfile.Record) error
}

// Poller runs the read → compare → append → sleep cycle.
type Poller struct {
	Reader clip.Reader
	Sink   Sink

	// Interval between cycles. Zero disables sleeping.
	Interval time.Duration

	// MaxCycles bounds Run. Zero or negative runs until ctx is cancelled.
	MaxCycles int

	state   State
	written int
}

// New returns a poller with the default interval.
func New(r clip.Reader, s Sink) *Poller {
	return &Poller{Reader: r, Sink: s, Interval: DefaultInterval}
}

// State returns the last observed value.
func (p *Poller) State() State { return p.state }

// Written returns the number of records appended so far.
func (p *Poller) Written() int { return p.written }

// Cycle performs one read and, if the clipboard changed, one append.
// Clipboard access errors and log write errors are logged and swallowed.
// A failed write leaves the state unchanged so the next cycle retries it.
// Any other error is returned.
func (p *Poller) Cycle() error {
	v, err := p.Reader.Read()
	if err != nil {
		if errors.Is(err, clip.ErrAccess) {
			slog.Debug("clipboard unreadable, skipping cycle", "err", err)
			return nil
		}
		return fmt.Errorf("clipboard read: %w", err)
	}

	next, rec := Step(p.state, v)
	if rec == nil {
		return nil
	}

	logDetected(*rec)
	if err := p.Sink.Append(*rec); err != nil {
		var we *logfile.WriteError
		if errors.As(err, &we) {
			slog.Error("writing clipboard log failed", "err", err)
			return nil
		}
		return fmt.Errorf("append: %w", err)
	}

	p.state = next
	p.written++
	if rec.NonText {
		slog.Info("non-text marker recorded")
	} else {
		slog.Info("write complete")
	}
	return nil
}

// Run polls until ctx is cancelled, MaxCycles is reached or an unexpected
// error occurs. Cancellation is a clean stop and returns nil.
func (p *Poller) Run(ctx context.Context) error {
	slog.Info("monitoring clipboard",
		"backend", p.Reader.Name(),
		"interval", p.Interval,
	)

	for n := 0; p.MaxCycles <= 0 || n < p.MaxCycles; n++ {
		if ctx.Err() != nil {
			break
		}
		if err := p.Cycle(); err != nil {
			slog.Error("unexpected error, monitoring stopped", "err", err, "records", p.written)
			return err
		}
		if !sleep(ctx, p.Interval) {
			break
		}
	}

	slog.Info("monitoring stopped", "records", p.written)
	return nil
}

// sleep waits for d or until ctx is done. It reports whether polling should
// continue.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
