package blackbg

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// rowImage builds a single-row opaque image from the given colors.
func rowImage(colors ...color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		img.SetNRGBA(x, 0, c)
	}
	return img
}

func opaque(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func alphas(img *image.NRGBA) []uint8 {
	bounds := img.Bounds()
	out := make([]uint8, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out = append(out, img.NRGBAAt(x, y).A)
		}
	}
	return out
}

func writePNG(t *testing.T, img image.Image, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

// logoImage draws a bright square on black with a one-pixel dark rim.
func logoImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := opaque(0, 0, 0)
			switch {
			case x >= 3 && x <= 4 && y >= 3 && y <= 4:
				c = opaque(240, 200, 20)
			case x >= 2 && x <= 5 && y >= 2 && y <= 5:
				c = opaque(50, 40, 35)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
