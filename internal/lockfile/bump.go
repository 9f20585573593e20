package lockfile

import (
	"strings"

	"github.com/frederic-klein/pinlock/internal/dep"
)

// SimpleBump pins the simple dependency name to version.
func SimpleBump(deps []*dep.Locked, name, version string) (bool, error) {
	return Bump(deps, name, version, dep.KindSimple)
}

// GitBump points the source reference dependency name to ref.
func GitBump(deps []*dep.Locked, name, ref string) (bool, error) {
	return Bump(deps, name, ref, dep.KindSourceRef)
}

// Bump sets the value of the only dependency called name and reports whether
// the lock changed. Names are compared exactly. An entry already holding value
// is left alone whatever its kind.
func Bump(deps []*dep.Locked, name, value string, kind dep.Kind) (bool, error) {
	var matches []*dep.Locked
	for _, d := range deps {
		if d.Name() == name {
			matches = append(matches, d)
		}
	}
	if len(matches) == 0 {
		return false, &NothingToBumpError{Name: name}
	}
	if len(matches) > 1 {
		return false, &MultipleBumpsError{Name: name}
	}

	d := matches[0]
	if d.Value() == value {
		return false, nil
	}
	if d.Kind() != kind {
		return false, &IncorrectLockedTypeError{Name: name, Expected: kind}
	}
	if !validValue(value, kind) {
		return false, &InvalidValueError{Name: name, Value: value}
	}

	var err error
	switch kind {
	case dep.KindSourceRef:
		err = d.GitBump(value)
	default:
		err = d.SimpleBump(value)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// validValue rejects values the locators would not find again in the line.
func validValue(value string, kind dep.Kind) bool {
	if value == "" || strings.ContainsAny(value, " \t\r\n\\#") {
		return false
	}
	return kind != dep.KindSourceRef || !strings.Contains(value, "@")
}
