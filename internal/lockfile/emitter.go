package lockfile

import (
	"io"
	"sort"
	"strings"

	"github.com/frederic-klein/pinlock/internal/dep"
)

// Emitter writes lock files.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates a new lock file emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes the lock lines, sorted case-insensitively.
func (e *Emitter) Emit(deps []*dep.Locked) error {
	_, err := io.WriteString(e.w, Dump(deps))
	return err
}

// Dump renders dependencies as lock file contents.
//
// Lines are sorted on their lowercase form, which is what `pip freeze` does,
// and the result always ends with a single newline.
func Dump(deps []*dep.Locked) string {
	lines := make([]string, 0, len(deps))
	for _, d := range deps {
		lines = append(lines, strings.TrimRight(d.Line(), "\n"))
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return strings.ToLower(lines[i]) < strings.ToLower(lines[j])
	})
	return strings.Join(lines, "\n") + "\n"
}
