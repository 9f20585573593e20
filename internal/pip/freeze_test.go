package pip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frederic-klein/pinlock/internal/dep"
)

func TestParseFreeze(t *testing.T) {
	output := `Django==4.2.7
pkg-resources==0.0.0

zope.interface==6.0
ruamel.yaml.clib==0.2.8
`
	got, err := ParseFreeze(output, DefaultExclude)
	require.NoError(t, err)

	want := []dep.Frozen{
		{Name: "Django", Version: "4.2.7"},
		{Name: "zope.interface", Version: "6.0"},
		{Name: "ruamel.yaml.clib", Version: "0.2.8"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFreeze() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFreeze_NoExclude(t *testing.T) {
	got, err := ParseFreeze("pkg-resources==0.0.0\n", nil)
	require.NoError(t, err)
	assert.Equal(t, []dep.Frozen{{Name: "pkg-resources", Version: "0.0.0"}}, got)
}

func TestParseFreeze_Empty(t *testing.T) {
	got, err := ParseFreeze("", DefaultExclude)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseFreeze_BrokenLines(t *testing.T) {
	tests := []string{
		"foo",
		"foo==",
		"==1.0",
		"foo==1.0==2.0",
		"-e git+https://git.local/foo.git@master#egg=foo",
		"foo==1.0 # comment",
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			_, err := ParseFreeze("bar==1\n"+line+"\n", DefaultExclude)
			var broken *BrokenFreezeLineError
			require.ErrorAs(t, err, &broken)
			assert.Equal(t, line, broken.Line)
		})
	}
}
