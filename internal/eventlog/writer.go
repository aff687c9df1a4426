package eventlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Writer appends entries to a machine's log file. Only the tick loop
// writes, so Writer does no locking; each entry goes out in a single
// write call and lines are never interleaved.
type Writer struct {
	path string
	f    *os.File
}

// NewWriter creates the log file, truncating any previous contents. The
// file is guaranteed zero-length when NewWriter returns.
func NewWriter(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file %s: %w", path, err)
	}
	return &Writer{path: path, f: f}, nil
}

// Append writes one entry as a single line.
func (w *Writer) Append(e Entry) error {
	if _, err := w.f.WriteString(e.Line()); err != nil {
		return fmt.Errorf("failed to append to %s: %w", w.path, err)
	}
	return nil
}

// Path returns the log file path.
func (w *Writer) Path() string {
	return w.path
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	return w.f.Close()
}

// ReadFile reads all well-formed entries from a log file, skipping
// malformed lines. Safe to call on a file that a machine is still
// appending to; a torn final line is simply skipped.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed reading %s: %w", path, err)
	}
	return entries, nil
}
