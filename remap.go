package blackbg

import (
	"fmt"
	"image"
)

const (
	// DefaultBlackThreshold is the channel value below which a pixel counts
	// as background black.
	DefaultBlackThreshold = 30
	// DefaultEdgeThreshold bounds the dark, anti-aliased rim that receives
	// partial transparency.
	DefaultEdgeThreshold = 60
)

// Thresholds controls which pixels are treated as background. Black is
// expected to be lower than Edge; the relation is not enforced.
type Thresholds struct {
	Black uint8
	Edge  uint8
}

// DefaultThresholds returns the thresholds used by the preprocess-logo command.
func DefaultThresholds() Thresholds {
	return Thresholds{Black: DefaultBlackThreshold, Edge: DefaultEdgeThreshold}
}

// Class is the mask a pixel falls into.
type Class int

const (
	// ClassOpaque pixels keep their alpha.
	ClassOpaque Class = iota
	// ClassTransparent pixels are background black and get alpha 0.
	ClassTransparent
	// ClassEdge pixels are dark but not black and get a brightness ramp.
	ClassEdge
)

func (c Class) String() string {
	switch c {
	case ClassTransparent:
		return "transparent"
	case ClassEdge:
		return "edge"
	default:
		return "opaque"
	}
}

// Stats counts how many pixels landed in each mask.
type Stats struct {
	Width       int
	Height      int
	Transparent int
	Edge        int
	Unchanged   int
}

func (s *Stats) add(c Class) {
	switch c {
	case ClassTransparent:
		s.Transparent++
	case ClassEdge:
		s.Edge++
	default:
		s.Unchanged++
	}
}

// Classify reports which mask the color (r, g, b) belongs to.
func Classify(r, g, b uint8, t Thresholds) Class {
	if r < t.Black && g < t.Black && b < t.Black {
		return ClassTransparent
	}
	if r < t.Edge && g < t.Edge && b < t.Edge {
		return ClassEdge
	}
	return ClassOpaque
}

// EdgeAlpha maps the brightness of a dark edge pixel onto [0, 255], reaching
// 255 as the brightness approaches edge. The result is truncated.
func EdgeAlpha(r, g, b uint8, edge uint8) uint8 {
	if edge == 0 {
		return 255
	}
	sum := int(r) + int(g) + int(b)
	alpha := sum * 255 / (3 * int(edge))
	if alpha > 255 {
		alpha = 255
	}
	return uint8(alpha)
}

// Remap rewrites the alpha channel of img in place. Color channels are never
// modified.
func Remap(img *image.NRGBA, t Thresholds) Stats {
	bounds := img.Bounds()
	stats := Stats{Width: bounds.Dx(), Height: bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y)
			px := img.Pix[offset : offset+4 : offset+4]

			class := Classify(px[0], px[1], px[2], t)
			switch class {
			case ClassTransparent:
				px[3] = 0
			case ClassEdge:
				px[3] = EdgeAlpha(px[0], px[1], px[2], t.Edge)
			}
			stats.add(class)
		}
	}

	return stats
}

// RemoveBlackBackground returns a copy of img with the black background made
// transparent. The input image is left untouched.
func RemoveBlackBackground(img image.Image, t Thresholds) (*image.NRGBA, Stats, error) {
	if err := checkDimensions(img); err != nil {
		return nil, Stats{}, err
	}

	out := ToNRGBA(img)
	stats := Remap(out, t)
	return out, stats, nil
}

// String summarizes the counts for display.
func (s Stats) String() string {
	return fmt.Sprintf("%dx%d: %d transparent, %d edge, %d unchanged",
		s.Width, s.Height, s.Transparent, s.Edge, s.Unchanged)
}
