package file

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_Read(t *testing.T) {
	var l Lines
	got := slices.Collect(l.Read(strings.NewReader("uno\ndos\r\n\ntres")))

	assert.Equal(t, []string{"uno", "dos", "", "tres"}, got)
	assert.NoError(t, l.Err())
}

func TestLines_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("a1\na2\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("b1\n"), 0644))

	var l Lines
	got := slices.Collect(l.Files(strings.NewReader("in\n"), []string{a, Stdin, b}))

	assert.Equal(t, []string{"a1", "a2", "in", "b1"}, got)
	assert.NoError(t, l.Err())
}

func TestLines_DefaultStdin(t *testing.T) {
	var l Lines
	got := slices.Collect(l.Files(strings.NewReader("hola\n"), nil))
	assert.Equal(t, []string{"hola"}, got)
}

func TestLines_MissingFile(t *testing.T) {
	var l Lines
	got := slices.Collect(l.Files(strings.NewReader(""), []string{filepath.Join(t.TempDir(), "none")}))

	assert.Empty(t, got)
	assert.ErrorIs(t, l.Err(), os.ErrNotExist)
}

func TestLines_EarlyStop(t *testing.T) {
	var l Lines
	for line := range l.Read(strings.NewReader("1\n2\n3\n")) {
		if line == "2" {
			break
		}
	}
	assert.NoError(t, l.Err())
}
