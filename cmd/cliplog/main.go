// cliplog: append clipboard changes to a log file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/cliplog/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cliplog",
		Short: "Log clipboard changes to a file",
		Long: `cliplog polls the system clipboard and appends every new text value to a
log file, each followed by a "--- clipboard item end ---" line. Non-text
content is recorded once as "[Non-Text Data Copied]".

Config file search order (first found wins):
  /etc/cliplog/cliplog.toml
  $HOME/.config/cliplog/cliplog.toml
  path supplied via --config

All flags can be set via CLIPLOG_<FLAG> env vars or config-file keys.
See "cliplog watch --help" for the full flag reference.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newWatchCmd(),
		newShowCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cliplog %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
