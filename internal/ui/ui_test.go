package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Info1("Updating lock")
	p.Info2("Freezing environment")
	p.Added("bar==1.3")
	p.Removed("old==1")
	p.Changed("foo", "0.42", "0.43")
	p.Success()

	stdout := out.String()
	assert.Contains(t, stdout, ":: Updating lock")
	assert.Contains(t, stdout, "-> Freezing environment")
	assert.Contains(t, stdout, "+ bar==1.3")
	assert.Contains(t, stdout, "- old==1")
	assert.Contains(t, stdout, "foo: 0.42 -> ")
	assert.Contains(t, stdout, "0.43")
	assert.Contains(t, stdout, "ok!")
	assert.Empty(t, errOut.String())
}

func TestPrinter_Stderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Warning("Dependency foo already up-to-date")
	p.Error(errors.New("malformed lock at line 2"))

	stderr := errOut.String()
	assert.Contains(t, stderr, "Warning")
	assert.Contains(t, stderr, "Dependency foo already up-to-date")
	assert.Contains(t, stderr, "Error")
	assert.Contains(t, stderr, "malformed lock at line 2")
	assert.Empty(t, out.String())
}
