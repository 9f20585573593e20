package lockfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frederic-klein/pinlock/internal/dep"
)

func mustParse(t *testing.T, input string) []*dep.Locked {
	t.Helper()
	deps, err := Parse(input)
	require.NoError(t, err)
	return deps
}

func TestDump(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "\n",
		},
		{
			name:  "adds trailing newline",
			input: "foo==0.42",
			want:  "foo==0.42\n",
		},
		{
			name:  "case insensitive sort",
			input: "zope==1\nDjango==4.2\nalembic==1.12\nbabel==2\n",
			want:  "alembic==1.12\nbabel==2\nDjango==4.2\nzope==1\n",
		},
		{
			name:  "sorts on the whole line",
			input: "git+https://git.local/zzz.git@master#egg=aaa\nbar==1\n",
			want:  "bar==1\ngit+https://git.local/zzz.git@master#egg=aaa\n",
		},
		{
			name:  "keeps markers and comments",
			input: "foo == 1.3 ; python_version >= '3.6'\nbar==2 # pinned\n",
			want:  "bar==2 # pinned\nfoo == 1.3 ; python_version >= '3.6'\n",
		},
		{
			name:  "drops comments and blank lines",
			input: "# header\n\nfoo==1\n\n# trailer\n",
			want:  "foo==1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dump(mustParse(t, tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDump_StripsLineNewlines(t *testing.T) {
	d, err := dep.NewSimple("foo==1\n")
	require.NoError(t, err)
	assert.Equal(t, "foo==1\n", Dump([]*dep.Locked{d}))
}

func TestEmitter_Emit(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)
	require.NoError(t, emitter.Emit(mustParse(t, "b==2\na==1\n")))
	assert.Equal(t, "a==1\nb==2\n", buf.String())
}
