// Package logfile defines the on-disk clipboard log format.
//
// The log is a flat, append-only text file. Each record is the captured
// clipboard text (or Placeholder for non-text content) followed by
// Delimiter:
//
//	hello
//	--- clipboard item end ---
//	[Non-Text Data Copied]
//	--- clipboard item end ---
package logfile

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// Delimiter terminates every record.
	Delimiter = "\n--- clipboard item end ---\n"

	// Placeholder is written in place of content that is not text.
	Placeholder = "[Non-Text Data Copied]"

	// DefaultPath is the log written when no output path is configured.
	DefaultPath = "clipboard_log.txt"
)

// Record is a single log entry.
type Record struct {
	NonText bool
	Text    string
}

// Body returns the record content without the delimiter.
func (r Record) Body() string {
	if r.NonText {
		return Placeholder
	}
	return r.Text
}

// Bytes renders the record as it appears on disk.
func (r Record) Bytes() []byte {
	return []byte(r.Body() + Delimiter)
}

// WriteError reports a failure to open, write or close the log file.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("log file %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// File appends records to the log at Path. The file is opened and closed
// on every Append; no handle is held between calls.
type File struct {
	Path string
}

// Append writes rec to the end of the log, creating it if necessary.
func (f *File) Append(rec Record) (err error) {
	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &WriteError{Path: f.Path, Op: "open", Err: err}
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: f.Path, Op: "close", Err: cerr}
		}
	}()

	if _, err := fh.Write(rec.Bytes()); err != nil {
		return &WriteError{Path: f.Path, Op: "write", Err: err}
	}
	return nil
}

// Parse splits a log into record bodies. A trailing fragment with no
// delimiter (an interrupted write) is returned as the last element.
func Parse(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	if len(b) == 0 {
		return nil, nil
	}
	parts := strings.Split(string(b), Delimiter)
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts, nil
}

// ReadFile parses the log at path.
func ReadFile(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh)
}
