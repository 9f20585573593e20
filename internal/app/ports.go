package app

import (
	"context"

	"github.com/frederic-klein/pinlock/internal/dep"
	"github.com/frederic-klein/pinlock/internal/pip"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// Environment is the virtual environment the lock is computed from.
type Environment interface {
	// Freeze returns the installed packages.
	Freeze(ctx context.Context) ([]dep.Frozen, error)
	// Info returns the interpreter version and platform.
	Info(ctx context.Context) (pip.Info, error)
}

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
}
