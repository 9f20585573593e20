package lockfile

import (
	"github.com/frederic-klein/pinlock/internal/dep"
)

// UpdateOptions restricts dependencies added while updating the lock.
// Empty fields add no marker.
type UpdateOptions struct {
	PythonVersion string // e.g. "< '3.6'"
	SysPlatform   string // e.g. "win32"
}

// Patch records a simple dependency whose version followed the environment.
type Patch struct {
	Name string
	From string
	To   string
}

// Changes describes what an update did to the lock.
type Changes struct {
	Patched []Patch
	Added   []*dep.Locked
}

// Empty reports whether the update left the lock untouched.
func (c Changes) Empty() bool {
	return len(c.Patched) == 0 && len(c.Added) == 0
}

// Updater merges frozen dependencies into a lock.
type Updater struct {
	opts UpdateOptions
}

// NewUpdater creates a new updater.
func NewUpdater(opts UpdateOptions) *Updater {
	return &Updater{opts: opts}
}

// Update patches existing simple entries to the frozen versions, then appends
// the frozen dependencies the lock does not know about. Nothing is ever
// removed: a dependency missing from frozen may simply not be installed here.
func (u *Updater) Update(deps []*dep.Locked, frozen []dep.Frozen) ([]*dep.Locked, Changes) {
	var changes Changes
	changes.Patched = patchExisting(deps, frozen)
	deps, changes.Added = u.addMissing(deps, frozen)
	return deps, changes
}

func patchExisting(deps []*dep.Locked, frozen []dep.Frozen) []Patch {
	var patched []Patch
	for _, d := range deps {
		// freeze output only has versions, source references are kept as chosen
		if d.Kind() != dep.KindSimple {
			continue
		}
		f, ok := findFrozen(frozen, d.Name())
		if !ok || f.Version == d.Value() {
			continue
		}
		from := d.Value()
		// d is simple, SimpleBump cannot fail
		_ = d.SimpleBump(f.Version)
		patched = append(patched, Patch{Name: d.Name(), From: from, To: f.Version})
	}
	return patched
}

func (u *Updater) addMissing(deps []*dep.Locked, frozen []dep.Frozen) ([]*dep.Locked, []*dep.Locked) {
	known := make(map[string]bool, len(deps))
	for _, d := range deps {
		known[d.Name()] = true
	}

	var added []*dep.Locked
	for _, f := range frozen {
		if known[f.Name] {
			continue
		}
		known[f.Name] = true

		// A dependency first seen while locking for a given python version or
		// platform must not be installed everywhere else.
		d := dep.FromFrozen(f)
		if u.opts.PythonVersion != "" {
			d.WithPythonVersion(u.opts.PythonVersion)
		}
		if u.opts.SysPlatform != "" {
			d.WithPlatform(u.opts.SysPlatform)
		}
		deps = append(deps, d)
		added = append(added, d)
	}
	return deps, added
}

func findFrozen(frozen []dep.Frozen, name string) (dep.Frozen, bool) {
	for _, f := range frozen {
		if f.Name == name {
			return f, true
		}
	}
	return dep.Frozen{}, false
}

// Tidy keeps the simple dependencies still present in frozen and every source
// reference, then updates the result like Update.
func (u *Updater) Tidy(deps []*dep.Locked, frozen []dep.Frozen) ([]*dep.Locked, []*dep.Locked, Changes) {
	var kept, removed []*dep.Locked
	for _, d := range deps {
		if d.Kind() == dep.KindSimple {
			if _, ok := findFrozen(frozen, d.Name()); !ok {
				removed = append(removed, d)
				continue
			}
		}
		kept = append(kept, d)
	}
	kept, changes := u.Update(kept, frozen)
	return kept, removed, changes
}
