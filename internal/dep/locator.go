package dep

import (
	"fmt"
	"strings"
)

// ParseError reports a line that does not have the expected shape.
type ParseError struct {
	Details string
}

func (e *ParseError) Error() string {
	return e.Details
}

func newParseError(format string, args ...any) *ParseError {
	return &ParseError{Details: fmt.Sprintf(format, args...)}
}

// LocateSimple finds the version token of a `name==version` line.
// The token starts at the first non-blank byte after the first `==` and stops
// at whitespace, a backslash or a `#`, which leaves markers, inline comments
// and continuations out of it.
func LocateSimple(line string) (VersionSpec, error) {
	idx := strings.Index(line, "==")
	if idx < 0 {
		return VersionSpec{}, newParseError("expecting `==` in %q", line)
	}
	start := idx + 2
	for start < len(line) && isBlank(line[start]) {
		start++
	}
	end := start
	for end < len(line) && !isVersionEnd(line[end]) {
		end++
	}
	if end == start {
		return VersionSpec{}, newParseError("missing version after `==` in %q", line)
	}
	return VersionSpec{Start: start, End: end, Value: line[start:end]}, nil
}

// LocateSourceRef finds the reference token of a `...@<ref>#egg=<name>` line.
func LocateSourceRef(line string) (VersionSpec, error) {
	spec, _, err := locateSourceRef(line)
	return spec, err
}

func locateSourceRef(line string) (VersionSpec, string, error) {
	// hosts and paths may contain '@' too, the ref follows the last one
	at := strings.LastIndex(line, "@")
	if at < 0 {
		return VersionSpec{}, "", newParseError("expecting `@` in %q", line)
	}
	afterAt := line[at+1:]
	chunks := strings.Split(afterAt, "#")
	if len(chunks) != 2 {
		return VersionSpec{}, "", newParseError("expecting `<ref>#egg=<name>` after `@`, got %q", afterAt)
	}
	ref, egg := chunks[0], chunks[1]
	name, ok := strings.CutPrefix(egg, "egg=")
	if !ok {
		return VersionSpec{}, "", newParseError("expecting `<ref>#egg=<name>` after `@`, got %q", afterAt)
	}
	// the name stops where a version would: markers and continuations follow it
	name = strings.TrimLeft(name, " \t")
	if end := strings.IndexAny(name, " \t\r\n\\#"); end >= 0 {
		name = name[:end]
	}
	if ref == "" {
		return VersionSpec{}, "", newParseError("empty reference in %q", line)
	}
	if name == "" {
		return VersionSpec{}, "", newParseError("empty egg name in %q", line)
	}
	start := len(line) - len(afterAt)
	return VersionSpec{Start: start, End: start + len(ref), Value: ref}, name, nil
}

func simpleName(line string) string {
	name, _, _ := strings.Cut(line, "==")
	return strings.TrimSpace(name)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isVersionEnd(c byte) bool {
	return isBlank(c) || c == '\\' || c == '#'
}
