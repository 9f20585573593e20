package lockfile

import (
	"fmt"

	"github.com/frederic-klein/pinlock/internal/dep"
)

// MalformedLockError is returned when a lock line is not a dependency.
type MalformedLockError struct {
	Line    int
	Details string
}

func (e *MalformedLockError) Error() string {
	return fmt.Sprintf("malformed lock at line %d: %s", e.Line, e.Details)
}

// NothingToBumpError is returned when no lock entry has the requested name.
type NothingToBumpError struct {
	Name string
}

func (e *NothingToBumpError) Error() string {
	return fmt.Sprintf("could not find any dependency named '%s' in the lock", e.Name)
}

// MultipleBumpsError is returned when several lock entries share the requested name.
type MultipleBumpsError struct {
	Name string
}

func (e *MultipleBumpsError) Error() string {
	return fmt.Sprintf("multiple matches found for '%s' in the lock", e.Name)
}

// IncorrectLockedTypeError is returned when the entry to bump is not of the requested kind.
type IncorrectLockedTypeError struct {
	Name     string
	Expected dep.Kind
}

func (e *IncorrectLockedTypeError) Error() string {
	return fmt.Sprintf("dependency '%s' is not a %s dependency", e.Name, e.Expected)
}

// InvalidValueError is returned when a bump value cannot live in a lock line.
type InvalidValueError struct {
	Name  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for dependency '%s'", e.Value, e.Name)
}
