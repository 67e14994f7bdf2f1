package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.klb.dev/cliplog/internal/logfile"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeLog(t *testing.T, recs ...logfile.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clipboard_log.txt")
	f := &logfile.File{Path: path}
	for _, r := range recs {
		if err := f.Append(r); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "cliplog dev\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestShowText(t *testing.T) {
	path := writeLog(t, logfile.Record{Text: "hello"}, logfile.Record{NonText: true}, logfile.Record{Text: "world"})

	out, err := execute(t, "show", "--output", path)
	if err != nil {
		t.Fatal(err)
	}
	want := "#1\nhello\n#2\n(non-text)\n#3\nworld\n"
	if out != want {
		t.Errorf("show output = %q, want %q", out, want)
	}
}

func TestShowLastJSON(t *testing.T) {
	path := writeLog(t, logfile.Record{Text: "a"}, logfile.Record{Text: "b"}, logfile.Record{NonText: true})

	out, err := execute(t, "show", "-o", path, "-n", "2", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var got []shownRecord
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	want := []shownRecord{{Index: 2, Text: "b"}, {Index: 3, NonText: true}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("records = %+v, want %+v", got, want)
	}
}

func TestShowOutputFromEnv(t *testing.T) {
	path := writeLog(t, logfile.Record{Text: "from env"})
	t.Setenv("CLIPLOG_OUTPUT", path)

	out, err := execute(t, "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "from env") {
		t.Errorf("show should read CLIPLOG_OUTPUT, got %q", out)
	}
}

func TestShowConfigFile(t *testing.T) {
	path := writeLog(t, logfile.Record{Text: "from config"})
	cfg := filepath.Join(t.TempDir(), "cliplog.toml")
	if err := os.WriteFile(cfg, []byte("output = \""+filepath.ToSlash(path)+"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "show", "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "from config") {
		t.Errorf("show should read output from config file, got %q", out)
	}
}

func TestShowMissingFile(t *testing.T) {
	if _, err := execute(t, "show", "-o", filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("show should fail for a missing log")
	}
}

func TestWatchHeadlessBounded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	_, err := execute(t, "watch",
		"--backend", "headless",
		"--output", path,
		"--interval", "0s",
		"--max-cycles", "3",
		"--log-format", "json",
		"--log-level", "error",
	)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("headless watch should not create the log, stat err = %v", err)
	}
}

func TestWatchRejectsUnknownBackend(t *testing.T) {
	_, err := execute(t, "watch", "--backend", "carrier-pigeon", "--log-level", "error", "--log-format", "json")
	if err == nil {
		t.Fatal("watch should reject an unknown backend")
	}
}
