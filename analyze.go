package blackbg

import (
	"image"
	"image/color"
)

// Analyze counts how many pixels of img would become transparent, receive an
// edge ramp, or stay unchanged under t, without producing an output image.
func Analyze(img image.Image, t Thresholds) (Stats, error) {
	if err := checkDimensions(img); err != nil {
		return Stats{}, err
	}

	if n, ok := img.(*image.NRGBA); ok {
		return analyzeNRGBA(n, t), nil
	}

	bounds := img.Bounds()
	stats := Stats{Width: bounds.Dx(), Height: bounds.Dy()}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			stats.add(Classify(c.R, c.G, c.B, t))
		}
	}

	return stats, nil
}

func analyzeNRGBA(img *image.NRGBA, t Thresholds) Stats {
	bounds := img.Bounds()
	stats := Stats{Width: bounds.Dx(), Height: bounds.Dy()}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y)
			stats.add(Classify(img.Pix[offset], img.Pix[offset+1], img.Pix[offset+2], t))
		}
	}
	return stats
}
