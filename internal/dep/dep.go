// Package dep holds the dependency types read from and written to the lock file.
//
// Frozen dependencies come from `pip freeze` output. Locked dependencies are
// lines of the lock file and are either simple pins (foo==42) or source
// references (git+https://git.local/foo@master#egg=foo).
package dep

import (
	"errors"
	"fmt"
)

// ErrWrongKind is returned when a bump method does not match the dependency kind.
var ErrWrongKind = errors.New("wrong dependency kind")

// Kind tells simple pins and source references apart.
type Kind int

const (
	KindSimple Kind = iota
	KindSourceRef
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindSourceRef:
		return "git"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Frozen is one `name==version` pair reported by the environment.
type Frozen struct {
	Name    string
	Version string
}

func (f Frozen) String() string {
	return f.Name + "==" + f.Version
}

// VersionSpec locates a version or a reference inside a lock line.
// line[Start:End] == Value holds for the line it was located in.
type VersionSpec struct {
	Start int
	End   int
	Value string
}

// Locked is one entry of the lock file. The raw line is the source of truth;
// name and version location are derived from it.
type Locked struct {
	kind Kind
	name string
	line string
	spec VersionSpec
}

// NewSimple builds a simple dependency from a `name==version` line.
func NewSimple(line string) (*Locked, error) {
	spec, err := LocateSimple(line)
	if err != nil {
		return nil, err
	}
	return &Locked{
		kind: KindSimple,
		name: simpleName(line),
		line: line,
		spec: spec,
	}, nil
}

// NewSourceRef builds a source reference dependency from a `...@<ref>#egg=<name>` line.
func NewSourceRef(line string) (*Locked, error) {
	spec, name, err := locateSourceRef(line)
	if err != nil {
		return nil, err
	}
	return &Locked{
		kind: KindSourceRef,
		name: name,
		line: line,
		spec: spec,
	}, nil
}

// FromFrozen converts a frozen dependency into a new simple lock entry.
func FromFrozen(f Frozen) *Locked {
	d, err := NewSimple(f.String())
	if err != nil {
		panic(fmt.Sprintf("synthesized line %q: %v", f.String(), err))
	}
	return d
}

func (d *Locked) Kind() Kind        { return d.kind }
func (d *Locked) Name() string      { return d.name }
func (d *Locked) Line() string      { return d.line }
func (d *Locked) Value() string     { return d.spec.Value }
func (d *Locked) Spec() VersionSpec { return d.spec }

// WithPythonVersion restricts a freshly synthesized entry to a python version,
// e.g. marker "< '3.6'".
func (d *Locked) WithPythonVersion(marker string) *Locked {
	d.line = fmt.Sprintf("%s ; python_version %s", d.line, marker)
	return d
}

// WithPlatform restricts a freshly synthesized entry to a sys.platform value.
func (d *Locked) WithPlatform(platform string) *Locked {
	d.line = fmt.Sprintf("%s ; sys_platform == '%s'", d.line, platform)
	return d
}

// SimpleBump sets the pinned version of a simple dependency.
func (d *Locked) SimpleBump(version string) error {
	if d.kind != KindSimple {
		return fmt.Errorf("%s: simple bump on %s dependency: %w", d.name, d.kind, ErrWrongKind)
	}
	d.splice(version)
	return nil
}

// GitBump sets the reference of a source reference dependency.
func (d *Locked) GitBump(ref string) error {
	if d.kind != KindSourceRef {
		return fmt.Errorf("%s: git bump on %s dependency: %w", d.name, d.kind, ErrWrongKind)
	}
	d.splice(ref)
	return nil
}

// splice replaces the located value and keeps the location in sync with the line.
func (d *Locked) splice(value string) {
	start, end := d.spec.Start, d.spec.End
	d.line = d.line[:start] + value + d.line[end:]
	d.spec = VersionSpec{Start: start, End: start + len(value), Value: value}
}
