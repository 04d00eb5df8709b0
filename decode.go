package blackbg

import (
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/draw"

	// Register common decoders, including WebP, BMP and TIFF via x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// Load opens and decodes the image at path and normalizes it to a
// non-premultiplied RGBA grid. Failures are reported as *DecodeError.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if err := checkDimensions(img); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return ToNRGBA(img), nil
}

// ToNRGBA copies img into a fresh *image.NRGBA whose bounds start at the
// origin. Sources without an alpha channel come out fully opaque.
func ToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	// Copy rows directly so straight alpha survives without a round trip
	// through premultiplied color.
	if n, ok := src.(*image.NRGBA); ok {
		rowLen := bounds.Dx() * 4
		for y := 0; y < bounds.Dy(); y++ {
			srcOff := n.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], n.Pix[srcOff:srcOff+rowLen])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

func checkDimensions(img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image provided")
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}
	return nil
}
