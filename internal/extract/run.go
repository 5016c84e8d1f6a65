// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"os"
)

// FileAccessError reports that the input header could not be opened or
// read. It is the only error kind the extractor produces.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("cannot read %s: %v", e.Path, cause)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Summary holds counts from one Run.
type Summary struct {
	Lines int
	Names int
}

// lineScanner walks r one line at a time and stops at each match.
type lineScanner struct {
	br     *bufio.Reader
	opts   Options
	logger *slog.Logger
	line   int
	err    error
}

func newLineScanner(r io.Reader, opts Options) *lineScanner {
	return &lineScanner{
		br:     bufio.NewReader(r),
		opts:   opts,
		logger: opts.logger(),
	}
}

// next returns the name captured from the next matching line. At end of
// input it returns io.EOF; any other error is a read failure. Once an error
// is returned every later call returns it again.
func (s *lineScanner) next() (string, error) {
	for s.err == nil {
		raw, err := s.br.ReadString('\n')
		s.err = err
		if raw == "" {
			continue
		}
		s.line++
		if name, ok := s.opts.match(trimEOL(raw)); ok {
			s.logger.Debug("matched extern declaration", "line", s.line, "name", name)
			return name, nil
		}
	}
	return "", s.err
}

// Names returns a lazy, single-pass sequence of the names declared extern
// in r, in input order. Each name is yielded before the next line is read.
// A read failure is yielded once as ("", err) and ends the sequence.
func Names(r io.Reader, opts Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s := newLineScanner(r, opts)
		for {
			name, err := s.next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(name, nil) {
				return
			}
		}
	}
}

// Run scans the header at path and writes each extern function name to w
// on its own line as soon as it is found. The file is closed before Run
// returns. Open and read failures are reported as *FileAccessError; names
// written before a read failure stay written.
func Run(path string, w io.Writer, opts Options) (Summary, error) {
	logger := opts.logger()

	f, err := os.Open(path)
	if err != nil {
		return Summary{}, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	logger.Debug("scanning header", "path", path, "trim", opts.Trim)

	var summary Summary
	s := newLineScanner(f, opts)
	for {
		name, err := s.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			summary.Lines = s.line
			return summary, &FileAccessError{Path: path, Err: err}
		}
		if _, err := io.WriteString(w, name+"\n"); err != nil {
			summary.Lines = s.line
			return summary, fmt.Errorf("writing name: %w", err)
		}
		summary.Names++
	}
	summary.Lines = s.line

	logger.Debug("scan complete", "path", path, "lines", summary.Lines, "names", summary.Names)
	return summary, nil
}
