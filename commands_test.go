package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/inkqr/internal/render"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "inkqr dev\n", out)
}

func TestRenderCommandWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	_, stderr, err := runCmd(t, "render", "-p", "https://example.com", "-c", "HELLO", "--position", "bottom", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "version ")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderCommandStdout(t *testing.T) {
	out, _, err := runCmd(t, "render", "-p", "hi", "-c", "HI", "--version", "2", "-o", "-")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	// Version 2 is 33 modules of 24px.
	assert.Equal(t, 33*24, img.Bounds().Dx())
}

func TestRenderCommandErrors(t *testing.T) {
	_, _, err := runCmd(t, "render", "-p", "hi", "-o", "-")
	assert.ErrorIs(t, err, render.ErrValidation)

	_, _, err = runCmd(t, "render", "-p", "hi", "-c", "HI", "--accent", "nope", "-o", "-")
	assert.ErrorIs(t, err, render.ErrValidation)

	_, _, err = runCmd(t, "render", "-p", "https://example.com/aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "-c", "HI", "--version", "1", "-o", "-")
	assert.ErrorIs(t, err, render.ErrCapacityExceeded)

	_, _, err = runCmd(t, "render", "--font-backend", "cairo", "-p", "hi", "-c", "HI", "-o", "-")
	assert.Error(t, err)
}
