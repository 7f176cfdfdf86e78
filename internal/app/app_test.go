package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rook-computer/inkqr/internal/logging"
	"github.com/rook-computer/inkqr/internal/render"
)

func newTestGenerator(t *testing.T, timeout time.Duration) (*Generator, *observer.ObservedLogs) {
	t.Helper()
	font, err := LoadFont(render.BackendOpenType)
	require.NoError(t, err)
	core, logs := observer.New(zap.InfoLevel)
	return New(font, logging.NewFromZap(zap.New(core)), timeout), logs
}

func TestGenerate(t *testing.T) {
	g, logs := newTestGenerator(t, 10*time.Second)
	res, err := g.Generate(context.Background(), render.Config{
		Payload: "https://example.com",
		Caption: "HELLO",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.PNG)
	assert.Equal(t, res.Size(), res.Image.Bounds().Dx())
	assert.Equal(t, 1, logs.FilterMessageSnippet("rendered version=").Len())
}

func TestGenerateRejectsEmptyCaption(t *testing.T) {
	g, logs := newTestGenerator(t, 10*time.Second)
	res, err := g.Generate(context.Background(), render.Config{Payload: "hi", Caption: "   "})
	assert.ErrorIs(t, err, render.ErrValidation)
	assert.Nil(t, res.PNG)
	assert.Nil(t, res.Image)
	assert.Equal(t, 1, logs.FilterMessageSnippet("rejected request").Len())
}

func TestGenerateCancelled(t *testing.T) {
	g, _ := newTestGenerator(t, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := g.Generate(ctx, render.Config{Payload: "https://example.com", Caption: "HELLO"})
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res.PNG)
}

func TestGenerateTimeout(t *testing.T) {
	g, logs := newTestGenerator(t, time.Microsecond)
	res, err := g.Generate(context.Background(), render.Config{Payload: "https://example.com", Caption: "HELLO"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, IsTimeout(err))
	assert.Nil(t, res.PNG)
	assert.Equal(t, 1, logs.FilterMessageSnippet("render abandoned").Len())
}

func TestNormalize(t *testing.T) {
	g := New(nil, nil, 0)
	g.DefaultAccent = render.Black

	cfg := g.Normalize(render.Config{Payload: " p ", Caption: "\tc\n"})
	assert.Equal(t, "p", cfg.Payload)
	assert.Equal(t, "c", cfg.Caption)
	assert.Equal(t, render.PositionCenter, cfg.Position)
	assert.Equal(t, render.Black, cfg.Accent)

	accent := render.DefaultAccent
	cfg = g.Normalize(render.Config{Accent: accent, Position: render.PositionTop})
	assert.Equal(t, accent, cfg.Accent)
	assert.Equal(t, render.PositionTop, cfg.Position)
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.False(t, IsTimeout(render.ErrEncoding))
	assert.False(t, IsTimeout(nil))
}
