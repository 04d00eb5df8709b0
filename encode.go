package blackbg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an output encoding that can carry an 8-bit alpha channel.
type Format int

const (
	FormatPNG Format = iota
	FormatTIFF
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatTIFF:
		return "tiff"
	case FormatBMP:
		return "bmp"
	default:
		return "png"
	}
}

// FormatFromPath picks the output format from the file extension. Extensions
// whose formats cannot store per-pixel alpha are rejected.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".jpg", ".jpeg", ".gif":
		return 0, &EncodeError{Path: path, Err: fmt.Errorf("format %q cannot store an alpha channel", ext)}
	case "":
		return 0, &EncodeError{Path: path, Err: fmt.Errorf("missing file extension")}
	default:
		return 0, &EncodeError{Path: path, Err: fmt.Errorf("unsupported output format %q", ext)}
	}
}

// withAlpha makes the PNG encoder keep the alpha channel even when every
// pixel is opaque.
type withAlpha struct {
	*image.NRGBA
}

func (withAlpha) Opaque() bool { return false }

// EncodePNG writes the provided image to the writer as PNG. NRGBA grids are
// always written as 8-bit RGBA.
func EncodePNG(w io.Writer, img image.Image) error {
	if n, ok := img.(*image.NRGBA); ok {
		return png.Encode(w, withAlpha{n})
	}
	return png.Encode(w, img)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return EncodePNG(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unknown format %d", int(f))
	}
}

// Save encodes img in the format implied by path and writes it there. The
// image is encoded in memory first so a failed encode leaves no file behind.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
