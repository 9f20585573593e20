// Package lockfile reads, edits and writes requirements lock files.
package lockfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/frederic-klein/pinlock/internal/dep"
)

// Parser reads lock files.
type Parser struct {
	r io.Reader
}

// NewParser creates a new lock file parser.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// Parse parses the contents of a lock file.
func Parse(text string) ([]*dep.Locked, error) {
	return NewParser(strings.NewReader(text)).Parse()
}

// logicalLine is one or more physical lines joined by trailing backslashes.
type logicalLine struct {
	number int // 1-based, first physical line
	text   string
}

// Parse reads every dependency of the lock file, in file order.
func (p *Parser) Parse() ([]*dep.Locked, error) {
	lines, err := p.logicalLines()
	if err != nil {
		return nil, err
	}

	var deps []*dep.Locked
	for _, l := range lines {
		text := strings.TrimSpace(l.text)
		if text == "" || isComment(text) {
			continue
		}
		d, err := parseLine(text)
		if err != nil {
			var parseErr *dep.ParseError
			if !errors.As(err, &parseErr) {
				return nil, err
			}
			return nil, &MalformedLockError{Line: l.number, Details: parseErr.Details}
		}
		deps = append(deps, d)
	}
	return deps, nil
}

func (p *Parser) logicalLines() ([]logicalLine, error) {
	var lines []logicalLine
	var current *logicalLine

	scanner := bufio.NewScanner(p.r)
	number := 0
	for scanner.Scan() {
		number++
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if current == nil {
			current = &logicalLine{number: number, text: line}
		} else {
			current.text += "\n" + line
		}

		// comments never continue, like pip's requirements reader
		if strings.HasSuffix(line, `\`) && !isComment(current.text) {
			continue
		}
		lines = append(lines, *current)
		current = nil
	}

	// a continuation on the last line has nothing to join
	if current != nil {
		lines = append(lines, *current)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lock: %w", err)
	}
	return lines, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}

// parseLine classifies a line before locating anything in it.
func parseLine(line string) (*dep.Locked, error) {
	switch {
	case strings.Contains(line, "#egg="):
		return dep.NewSourceRef(line)
	case strings.Contains(line, "=="):
		return dep.NewSimple(line)
	default:
		return nil, &dep.ParseError{Details: "neither a simple nor a source-reference dependency"}
	}
}
