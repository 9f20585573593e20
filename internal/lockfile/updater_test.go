package lockfile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/frederic-klein/pinlock/internal/dep"
)

func frozen(pairs ...string) []dep.Frozen {
	var res []dep.Frozen
	for i := 0; i+1 < len(pairs); i += 2 {
		res = append(res, dep.Frozen{Name: pairs[i], Version: pairs[i+1]})
	}
	return res
}

func TestUpdater_Update(t *testing.T) {
	tests := []struct {
		name   string
		opts   UpdateOptions
		input  string
		frozen []dep.Frozen
		want   string
	}{
		{
			name:   "simple dependency upgraded",
			input:  "foo==0.42\n",
			frozen: frozen("foo", "0.43"),
			want:   "foo==0.43\n",
		},
		{
			name:   "keep old deps",
			input:  "bar==1.3\nfoo==0.42\n",
			frozen: frozen("foo", "0.43"),
			want:   "bar==1.3\nfoo==0.43\n",
		},
		{
			name:   "from scratch",
			input:  "",
			frozen: frozen("bar", "1.3", "foo", "0.42"),
			want:   "bar==1.3\nfoo==0.42\n",
		},
		{
			name:   "keep git deps",
			input:  "git@example.com:bar/foo.git@master#egg=foo\n",
			frozen: frozen("foo", "0.42"),
			want:   "git@example.com:bar/foo.git@master#egg=foo\n",
		},
		{
			name:   "keep specifications",
			input:  "foo == 1.3 ; python_version >= '3.6'\n",
			frozen: frozen("foo", "1.4"),
			want:   "foo == 1.4 ; python_version >= '3.6'\n",
		},
		{
			name:   "add new deps",
			input:  "bar==6.2\n",
			frozen: frozen("foo", "0.42"),
			want:   "bar==6.2\nfoo==0.42\n",
		},
		{
			name:   "different python version",
			opts:   UpdateOptions{PythonVersion: "< '3.6'"},
			input:  "foo==0.42\n",
			frozen: frozen("foo", "0.42", "bar", "1.3"),
			want:   "bar==1.3 ; python_version < '3.6'\nfoo==0.42\n",
		},
		{
			name:   "different platform",
			opts:   UpdateOptions{SysPlatform: "win32"},
			input:  "foo==0.42\n",
			frozen: frozen("foo", "0.42", "winapi", "1.3"),
			want:   "foo==0.42\nwinapi==1.3 ; sys_platform == 'win32'\n",
		},
		{
			name:   "both markers",
			opts:   UpdateOptions{PythonVersion: ">= '3.8'", SysPlatform: "darwin"},
			input:  "",
			frozen: frozen("appnope", "0.1.3"),
			want:   "appnope==0.1.3 ; python_version >= '3.8' ; sys_platform == 'darwin'\n",
		},
		{
			name:   "markers never reach existing entries",
			opts:   UpdateOptions{SysPlatform: "win32"},
			input:  "foo==0.42\n",
			frozen: frozen("foo", "0.43"),
			want:   "foo==0.43\n",
		},
		{
			name:   "git name blocks append",
			input:  "git@example.com:bar/foo.git@master#egg=foo\n",
			frozen: frozen("foo", "0.42", "bar", "1"),
			want:   "bar==1\ngit@example.com:bar/foo.git@master#egg=foo\n",
		},
		{
			name:   "duplicate frozen names are added once",
			input:  "",
			frozen: frozen("foo", "1", "foo", "1"),
			want:   "foo==1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := mustParse(t, tt.input)
			deps, _ = NewUpdater(tt.opts).Update(deps, tt.frozen)
			assert.Equal(t, tt.want, Dump(deps))
		})
	}
}

func TestUpdater_Update_GitUntouched(t *testing.T) {
	input := "git@host:org/foo.git@master#egg=foo\n"
	deps := mustParse(t, input)
	deps, changes := NewUpdater(UpdateOptions{}).Update(deps, frozen("foo", "0.42"))
	assert.Equal(t, input, Dump(deps))
	assert.True(t, changes.Empty())
}

func TestUpdater_Update_Changes(t *testing.T) {
	deps := mustParse(t, "bar==1\nfoo==0.42\nsame==2\n")
	deps, changes := NewUpdater(UpdateOptions{}).Update(deps, frozen("foo", "0.43", "same", "2", "new", "3"))

	wantPatched := []Patch{{Name: "foo", From: "0.42", To: "0.43"}}
	if diff := cmp.Diff(wantPatched, changes.Patched); diff != "" {
		t.Errorf("Update() patched mismatch (-want +got):\n%s", diff)
	}
	var added []string
	for _, d := range changes.Added {
		added = append(added, d.Line())
	}
	if diff := cmp.Diff([]string{"new==3"}, added); diff != "" {
		t.Errorf("Update() added mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, deps, 4)
	assert.False(t, changes.Empty())
}

func TestUpdater_Tidy(t *testing.T) {
	input := "bar==1.3\nfoo==0.42\ngit@host:org/baz.git@master#egg=baz\nold==1\n"
	deps := mustParse(t, input)

	deps, removed, changes := NewUpdater(UpdateOptions{}).Tidy(deps, frozen("foo", "0.43", "bar", "1.3", "new", "2"))

	assert.Equal(t, "bar==1.3\nfoo==0.43\ngit@host:org/baz.git@master#egg=baz\nnew==2\n", Dump(deps))
	var removedNames []string
	for _, d := range removed {
		removedNames = append(removedNames, d.Name())
	}
	assert.Equal(t, []string{"old"}, removedNames)
	assert.Len(t, changes.Patched, 1)
	assert.Len(t, changes.Added, 1)
}
