package pip

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"

	"github.com/frederic-klein/pinlock/internal/dep"
)

// infoScript prints the interpreter version and platform, one per line.
const infoScript = `import platform, sys
print(platform.python_version())
print(sys.platform)
`

// ErrBadInfoOutput is returned when the interpreter info script output cannot be read.
var ErrBadInfoOutput = zerr.New("could not parse python info output")

// Info describes the python interpreter of the environment.
type Info struct {
	Version  string
	Platform string
}

// Runner runs pip through the python interpreter of a virtual environment.
type Runner struct {
	python  string
	exclude []string
}

// NewRunner creates a runner for the given interpreter path.
func NewRunner(python string, exclude []string) *Runner {
	return &Runner{python: python, exclude: exclude}
}

// Freeze returns the packages installed in the environment, editable ones excluded.
func (r *Runner) Freeze(ctx context.Context) ([]dep.Frozen, error) {
	out, err := r.run(ctx, "-m", "pip", "freeze", "--exclude-editable", "--all", "--local")
	if err != nil {
		return nil, err
	}
	deps, err := ParseFreeze(out, r.exclude)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read installed packages"), "python", r.python)
	}
	return deps, nil
}

// Info returns the interpreter version and platform.
func (r *Runner) Info(ctx context.Context) (Info, error) {
	out, err := r.run(ctx, "-c", infoScript)
	if err != nil {
		return Info{}, err
	}
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\n")
	if len(lines) != 2 {
		return Info{}, zerr.With(zerr.Wrap(ErrBadInfoOutput, "failed to inspect python"), "output", out)
	}
	return Info{
		Version:  strings.TrimSpace(lines[0]),
		Platform: strings.TrimSpace(lines[1]),
	}, nil
}

func (r *Runner) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.python, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		err = zerr.Wrap(err, "failed to run python")
		err = zerr.With(err, "command", r.python+" "+strings.Join(args, " "))
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return "", err
	}
	return string(out), nil
}
