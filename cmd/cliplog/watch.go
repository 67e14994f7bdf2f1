package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cliplog/internal/clip"
	"go.klb.dev/cliplog/internal/logfile"
	"go.klb.dev/cliplog/internal/watch"
)

func newWatchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the clipboard and append changes to the log",
		Long: `Polls the system clipboard every --interval and appends each new text
value to --output. Runs until interrupted (Ctrl+C or SIGTERM).

Backends (--backend):
  auto      system clipboard, then clipboard utility, then headless
  system    native clipboard (X11 / macOS / Windows)
  command   pbpaste, xclip, xsel or wl-paste
  headless  never reads anything

Precedence (lowest → highest): defaults → config file → CLIPLOG_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runWatch(cmd.Context(), v) },
	}

	f := cmd.Flags()
	f.StringP("output", "o", logfile.DefaultPath, "log file to append to")
	f.Duration("interval", watch.DefaultInterval, "pause between clipboard checks")
	f.String("backend", clip.BackendAuto, "clipboard backend: auto|system|command|headless")
	f.Int("max-cycles", 0, "stop after this many checks (0 = run until interrupted)")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runWatch(ctx context.Context, v *viper.Viper) error {
	setupLogging(v)

	interval := v.GetDuration("interval")
	if interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", interval)
	}

	reader, err := clip.New(v.GetString("backend"))
	if err != nil {
		return err
	}
	defer reader.Close()

	output := v.GetString("output")
	slog.Info("cliplog starting",
		"version", Version,
		"output", output,
		"backend", reader.Name(),
	)
	slog.Info("press Ctrl+C to stop")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := watch.New(reader, &logfile.File{Path: output})
	p.Interval = interval
	p.MaxCycles = v.GetInt("max-cycles")
	return p.Run(ctx)
}
