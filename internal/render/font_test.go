package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
)

var backends = []FontBackend{BackendOpenType, BackendFreeType}

func loadTestFont(t *testing.T, backend FontBackend) *Font {
	t.Helper()
	f, err := LoadFont(gobold.TTF, backend)
	require.NoError(t, err)
	return f
}

func TestLoadFont(t *testing.T) {
	for _, b := range backends {
		f := loadTestFont(t, b)
		assert.Equal(t, b, f.Backend())
	}

	f, err := LoadFont(gobold.TTF, "")
	require.NoError(t, err)
	assert.Equal(t, BackendOpenType, f.Backend())
}

func TestLoadFontErrors(t *testing.T) {
	_, err := LoadFont(nil, BackendOpenType)
	assert.ErrorIs(t, err, ErrAsset)

	for _, b := range backends {
		_, err := LoadFont([]byte("not a font"), b)
		assert.ErrorIs(t, err, ErrAsset, b)
	}

	_, err = LoadFont(gobold.TTF, "bitmap")
	assert.ErrorIs(t, err, ErrAsset)
}

func TestParseFontBackend(t *testing.T) {
	b, err := ParseFontBackend("")
	require.NoError(t, err)
	assert.Equal(t, BackendOpenType, b)

	b, err = ParseFontBackend("FreeType")
	require.NoError(t, err)
	assert.Equal(t, BackendFreeType, b)

	_, err = ParseFontBackend("cairo")
	assert.Error(t, err)
}

func TestMeasureGrowsWithSize(t *testing.T) {
	for _, b := range backends {
		f := loadTestFont(t, b)
		small, err := f.Measure("HELLO", 20)
		require.NoError(t, err)
		large, err := f.Measure("HELLO", 80)
		require.NoError(t, err)

		assert.Greater(t, large.Dx(), small.Dx(), b)
		assert.Greater(t, large.Dy(), small.Dy(), b)
		// Capitals sit on the baseline, so ink is above the pen.
		assert.Less(t, large.Min.Y, 0, b)
	}
}

func TestFitFontSizeIsLargestFitting(t *testing.T) {
	for _, b := range backends {
		f := loadTestFont(t, b)
		limit := CaptionWidthLimit(800)
		require.Equal(t, 480, limit)

		best, err := FitFontSize(f, "HELLO", limit)
		require.NoError(t, err)
		require.Greater(t, best, MinFontSize, b)
		require.Less(t, best, MaxFontSize, b)

		at, err := f.Measure("HELLO", best)
		require.NoError(t, err)
		assert.LessOrEqual(t, at.Dx(), limit, b)

		above, err := f.Measure("HELLO", best+1)
		require.NoError(t, err)
		assert.Greater(t, above.Dx(), limit, b)
	}
}

func TestFitFontSizeLongerCaptionIsNotLarger(t *testing.T) {
	f := loadTestFont(t, BackendOpenType)
	short, err := FitFontSize(f, "HELLO", 480)
	require.NoError(t, err)
	long, err := FitFontSize(f, "HELLO WORLD", 480)
	require.NoError(t, err)
	assert.LessOrEqual(t, long, short)
}

func TestFitFontSizeFallsBackToMinimum(t *testing.T) {
	f := loadTestFont(t, BackendOpenType)
	size, err := FitFontSize(f, "A caption far too long for one pixel", 1)
	require.NoError(t, err)
	assert.Equal(t, MinFontSize, size)
}
