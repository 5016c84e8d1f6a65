// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the names of extern function declarations out of a
// C header, one line at a time.
//
// A line matches only when it starts with the token "extern". Declarations
// split across lines, preprocessor conditionals and comments are not
// understood; the pass is purely textual.
package extract

import (
	"log/slog"
	"regexp"
	"strings"
)

// Declaration pattern.
var (
	// externDeclRe matches "extern <type> [*] <name>(" anchored at the start
	// of a line. Group 1 runs up to the first "(" and keeps any whitespace
	// that precedes it.
	externDeclRe = regexp.MustCompile(`^extern\s+\S+\s*\*?\s*([^(]+)`)
)

// Options configures a scan. The zero value leaves captures untouched and
// logs nothing.
type Options struct {
	// Trim drops whitespace between the name and its parenthesis.
	Trim bool

	// Logger receives debug events. Nil means silent.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) match(line string) (string, bool) {
	if o.Trim {
		return ExtractTrimmed(line)
	}
	return Extract(line)
}

// Extract reports the captured function name for line, or false when the
// line is not an extern declaration. The capture is returned unmodified, so
// "extern int foo (void);" yields "foo ".
func Extract(line string) (string, bool) {
	m := externDeclRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractTrimmed is Extract with trailing whitespace removed from the name.
// A capture that is all whitespace is not a match.
func ExtractTrimmed(line string) (string, bool) {
	name, ok := Extract(line)
	if !ok {
		return "", false
	}
	name = strings.TrimRight(name, " \t\f\v")
	return name, name != ""
}

// trimEOL strips a single "\n" or "\r\n" terminator.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
