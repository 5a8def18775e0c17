package prompt_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/prompt"
)

func TestScanner(t *testing.T) {
	var out bytes.Buffer
	r := prompt.NewScanner(strings.NewReader("  allay \nr\n"), &out)
	defer r.Close()

	got, err := r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "allay", got)

	got, err = r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "r", got)

	_, err = r.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> \n> \n> ", out.String())
}

func TestScripted(t *testing.T) {
	var out bytes.Buffer
	r := prompt.Scripted(&out, "ratio", " :daily ")

	a, err := r.ReadLine("? ")
	require.NoError(t, err)
	assert.Equal(t, "ratio", a)
	b, err := r.ReadLine("? ")
	require.NoError(t, err)
	assert.Equal(t, ":daily", b)
	_, err = r.ReadLine("? ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "? ratio\n?  :daily \n", out.String())
	assert.NoError(t, r.Close())
}

func TestOpen_NonTerminalUsesScanner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("abbey\n"), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	r, err := prompt.Open(f, &out)
	require.NoError(t, err)
	got, err := r.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "abbey", got)
}
