// Package pip talks to the pip of a virtual environment.
package pip

import (
	"bufio"
	"fmt"
	"slices"
	"strings"

	"deps.dev/util/pypi"

	"github.com/frederic-klein/pinlock/internal/dep"
)

// DefaultExclude lists packages never written to the lock.
// pkg-resources is a bogus entry added by Debian's pip,
// see https://bugs.debian.org/cgi-bin/bugreport.cgi?bug=871790
var DefaultExclude = []string{"pkg-resources"}

// BrokenFreezeLineError is returned when pip freeze prints something
// other than `name==version`.
type BrokenFreezeLineError struct {
	Line string
}

func (e *BrokenFreezeLineError) Error() string {
	return fmt.Sprintf("could not parse `pip freeze` output line: %q", e.Line)
}

// ParseFreeze parses `pip freeze` output, skipping excluded names.
func ParseFreeze(output string, exclude []string) ([]dep.Frozen, error) {
	var deps []dep.Frozen

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		f, err := parseFrozen(line)
		if err != nil {
			return nil, err
		}
		if slices.Contains(exclude, f.Name) {
			continue
		}
		deps = append(deps, f)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading pip freeze output: %w", err)
	}
	return deps, nil
}

func parseFrozen(line string) (dep.Frozen, error) {
	words := strings.Split(line, "==")
	if len(words) != 2 {
		return dep.Frozen{}, &BrokenFreezeLineError{Line: line}
	}
	name, version := strings.TrimSpace(words[0]), strings.TrimSpace(words[1])
	if name == "" || version == "" || strings.ContainsAny(version, " \t\\#") {
		return dep.Frozen{}, &BrokenFreezeLineError{Line: line}
	}
	if _, err := pypi.ParseDependency(line); err != nil {
		return dep.Frozen{}, &BrokenFreezeLineError{Line: line}
	}
	return dep.Frozen{Name: name, Version: version}, nil
}
