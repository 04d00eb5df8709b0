package blackbg

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMatchesRemap(t *testing.T) {
	src := logoImage()
	before := append([]uint8(nil), src.Pix...)

	got, err := Analyze(src, DefaultThresholds())
	require.NoError(t, err)
	assert.Equal(t, before, src.Pix, "analyze must not modify the image")

	_, want, err := RemoveBlackBackground(src, DefaultThresholds())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAnalyzeGenericImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 1))
	src.Pix = []uint8{0, 29, 30, 60}

	got, err := Analyze(src, DefaultThresholds())
	require.NoError(t, err)
	assert.Equal(t, Stats{Width: 4, Height: 1, Transparent: 2, Edge: 1, Unchanged: 1}, got)
}

func TestAnalyzeNil(t *testing.T) {
	_, err := Analyze(nil, DefaultThresholds())
	assert.Error(t, err)
}
