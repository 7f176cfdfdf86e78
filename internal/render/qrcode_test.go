package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeMatrixAuto(t *testing.T) {
	m, version, err := MakeMatrix("https://example.com", AutoVersion)
	require.NoError(t, err)
	require.GreaterOrEqual(t, version, 1)
	require.LessOrEqual(t, version, MaxVersion)
	assert.Equal(t, MatrixDimension(version), m.Dimension())

	for _, row := range m {
		require.Len(t, row, m.Dimension())
	}

	// Quiet zone is light on every side.
	n := m.Dimension()
	for i := 0; i < n; i++ {
		for q := 0; q < QuietZone; q++ {
			assert.False(t, m[q][i], "top row %d col %d", q, i)
			assert.False(t, m[n-1-q][i], "bottom row %d col %d", n-1-q, i)
			assert.False(t, m[i][q], "left col %d row %d", q, i)
			assert.False(t, m[i][n-1-q], "right col %d row %d", n-1-q, i)
		}
	}

	// Top-left finder pattern starts right after the quiet zone.
	assert.True(t, m[QuietZone][QuietZone])
	assert.True(t, m[QuietZone+6][QuietZone+6])
	assert.False(t, m[QuietZone+1][QuietZone+1])
}

func TestMakeMatrixAutoPicksSmallestVersion(t *testing.T) {
	_, small, err := MakeMatrix("hi", AutoVersion)
	require.NoError(t, err)
	assert.Equal(t, 1, small)

	_, large, err := MakeMatrix(strings.Repeat("x", 200), AutoVersion)
	require.NoError(t, err)
	assert.Greater(t, large, small)
}

func TestMakeMatrixAutoIsMinimal(t *testing.T) {
	_, version, err := MakeMatrix("https://example.com", AutoVersion)
	require.NoError(t, err)
	assert.Equal(t, 3, version)

	payloads := []string{
		"https://example.com",
		"https://example.com/",
		strings.Repeat("a", 150),
		"WIFI:S:office;T:WPA;P:correct horse battery staple;;",
	}
	for _, p := range payloads {
		_, v, err := MakeMatrix(p, AutoVersion)
		require.NoError(t, err, p)
		require.Greater(t, v, 1, p)

		_, _, err = MakeMatrix(p, v-1)
		assert.ErrorIs(t, err, ErrCapacityExceeded, "%q at version %d", p, v-1)

		_, forced, err := MakeMatrix(p, v)
		require.NoError(t, err, p)
		assert.Equal(t, v, forced, p)
	}
}

func TestMakeMatrixForcedVersion(t *testing.T) {
	m, version, err := MakeMatrix("hi", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, version)
	assert.Equal(t, 65, m.Dimension())
}

func TestMakeMatrixCapacityExceeded(t *testing.T) {
	_, _, err := MakeMatrix(strings.Repeat("x", 100), 1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestMakeMatrixEncodingFailure(t *testing.T) {
	// Larger than version 40 at level H holds.
	_, _, err := MakeMatrix(strings.Repeat("x", 3000), AutoVersion)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestMakeMatrixValidation(t *testing.T) {
	_, _, err := MakeMatrix("", AutoVersion)
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = MakeMatrix("hi", MaxVersion+1)
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = MakeMatrix("hi", -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMatrixDimension(t *testing.T) {
	assert.Equal(t, 29, MatrixDimension(1))
	assert.Equal(t, 185, MatrixDimension(40))
}
