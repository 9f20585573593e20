// Package app implements the lock commands: it reads the lock file, runs the
// lock engine against the environment and writes the result back.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/frederic-klein/pinlock/internal/dep"
	"github.com/frederic-klein/pinlock/internal/lockfile"
	"github.com/frederic-klein/pinlock/internal/ui"
)

// ErrMissingLock is returned when a command needs an existing lock file.
var ErrMissingLock = zerr.New("lock file not found")

// App runs lock operations on one lock file.
type App struct {
	env      Environment
	logger   Logger
	printer  *ui.Printer
	lockPath string
	version  string
}

// New creates an App. version is written in the lock header.
func New(env Environment, logger Logger, printer *ui.Printer, lockPath, version string) *App {
	return &App{
		env:      env,
		logger:   logger,
		printer:  printer,
		lockPath: lockPath,
		version:  version,
	}
}

// Lock merges the packages installed in the environment into the lock.
func (a *App) Lock(ctx context.Context, opts lockfile.UpdateOptions) error {
	a.printer.Info1("Updating lock")

	deps, frozen, err := a.readAndFreeze(ctx, true)
	if err != nil {
		return err
	}

	deps, changes := lockfile.NewUpdater(opts).Update(deps, frozen)
	a.report(changes)

	return a.writeLock(ctx, deps)
}

// Tidy rewrites the lock keeping only the packages installed in the environment.
func (a *App) Tidy(ctx context.Context) error {
	a.printer.Info1("Tidying lock")

	deps, frozen, err := a.readAndFreeze(ctx, false)
	if err != nil {
		return err
	}

	deps, removed, changes := lockfile.NewUpdater(lockfile.UpdateOptions{}).Tidy(deps, frozen)
	for _, d := range removed {
		a.printer.Removed(d.Line())
	}
	a.report(changes)

	return a.writeLock(ctx, deps)
}

// Bump sets the version or reference of one dependency of the lock.
func (a *App) Bump(ctx context.Context, name, value string, kind dep.Kind) error {
	a.printer.Info1(fmt.Sprintf("Bumping %s to %s ...", name, value))

	deps, err := a.readDeps(false)
	if err != nil {
		return err
	}

	changed, err := lockfile.Bump(deps, name, value, kind)
	if err != nil {
		return zerr.With(err, "lock", a.lockPath)
	}
	if !changed {
		a.printer.Warning(fmt.Sprintf("Dependency %s already up-to-date", name))
		return nil
	}

	if err := a.writeLock(ctx, deps); err != nil {
		return err
	}
	a.printer.Success()
	return nil
}

// Show writes the lock dependencies to w, sorted as in the lock file.
func (a *App) Show(w io.Writer) error {
	deps, err := a.readDeps(false)
	if err != nil {
		return err
	}
	if len(deps) == 0 {
		return nil
	}
	if err := lockfile.NewEmitter(w).Emit(deps); err != nil {
		return zerr.Wrap(err, "failed to print lock")
	}
	return nil
}

func (a *App) report(changes lockfile.Changes) {
	for _, p := range changes.Patched {
		a.printer.Changed(p.Name, p.From, p.To)
	}
	for _, d := range changes.Added {
		a.printer.Added(d.Line())
	}
	if changes.Empty() {
		a.logger.Debug("lock already matches the environment", "lock", a.lockPath)
	}
}

// readAndFreeze reads the lock while the environment is being frozen.
func (a *App) readAndFreeze(ctx context.Context, missingOK bool) ([]*dep.Locked, []dep.Frozen, error) {
	var deps []*dep.Locked
	var frozen []dep.Frozen

	a.printer.Info2("Freezing environment")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deps, err = a.readDeps(missingOK)
		return err
	})
	g.Go(func() error {
		var err error
		frozen, err = a.env.Freeze(gctx)
		if err != nil {
			return zerr.Wrap(err, "failed to freeze environment")
		}
		a.logger.Debug("environment frozen", "packages", len(frozen))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return deps, frozen, nil
}

func (a *App) readDeps(missingOK bool) ([]*dep.Locked, error) {
	data, err := os.ReadFile(a.lockPath)
	switch {
	case errors.Is(err, fs.ErrNotExist) && missingOK:
		a.logger.Debug("no lock yet", "lock", a.lockPath)
		data = nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, zerr.With(zerr.Wrap(ErrMissingLock, "failed to read lock"), "lock", a.lockPath)
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock"), "lock", a.lockPath)
	}

	deps, err := lockfile.Parse(string(data))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lock"), "lock", a.lockPath)
	}
	a.logger.Debug("lock read", "lock", a.lockPath, "dependencies", len(deps))
	return deps, nil
}

func (a *App) writeLock(ctx context.Context, deps []*dep.Locked) error {
	info, err := a.env.Info(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to get python info")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Generated with pinlock %s, python %s, on %s\n", a.version, info.Version, info.Platform)
	b.WriteString(lockfile.Dump(deps))

	if err := writeFileAtomic(a.lockPath, []byte(b.String())); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lock"), "lock", a.lockPath)
	}
	a.logger.Info("lock written", "lock", a.lockPath, "dependencies", len(deps))
	return nil
}

// writeFileAtomic replaces path so readers never see a partial lock.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
