package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cliplog/internal/logfile"
)

func newShowCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the records in a clipboard log",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runShow(cmd.OutOrStdout(), v) },
	}

	f := cmd.Flags()
	f.StringP("output", "o", logfile.DefaultPath, "log file to read")
	f.IntP("last", "n", 0, "show only the last N records (0 = all)")
	f.Bool("json", false, "output a JSON array")
	addConfigFlag(cmd)

	return cmd
}

type shownRecord struct {
	Index   int    `json:"index"`
	Text    string `json:"text,omitempty"`
	NonText bool   `json:"non_text,omitempty"`
}

func runShow(w io.Writer, v *viper.Viper) error {
	path := v.GetString("output")
	bodies, err := logfile.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	start := 0
	if n := v.GetInt("last"); n > 0 && n < len(bodies) {
		start = len(bodies) - n
	}

	records := make([]shownRecord, 0, len(bodies)-start)
	for i := start; i < len(bodies); i++ {
		r := shownRecord{Index: i + 1}
		if bodies[i] == logfile.Placeholder {
			r.NonText = true
		} else {
			r.Text = bodies[i]
		}
		records = append(records, r)
	}

	if v.GetBool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, r := range records {
		body := r.Text
		if r.NonText {
			body = "(non-text)"
		}
		fmt.Fprintf(w, "#%d\n%s\n", r.Index, strings.TrimRight(body, "\n"))
	}
	return nil
}
