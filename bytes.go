package blackbg

import (
	"bytes"
	"fmt"
	"image"
)

// DecodeImageBytes decodes raw image bytes, returning the image and the
// detected format string.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", &DecodeError{Err: fmt.Errorf("empty image data")}
	}

	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}
	return img, format, nil
}

// RemoveBlackBackgroundBytes decodes data, removes the black background and
// returns the result encoded as PNG.
func RemoveBlackBackgroundBytes(data []byte, t Thresholds) ([]byte, Stats, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Stats{}, err
	}

	out, stats, err := RemoveBlackBackground(img, t)
	if err != nil {
		return nil, Stats{}, &DecodeError{Err: err}
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		return nil, Stats{}, &EncodeError{Err: err}
	}
	return buf.Bytes(), stats, nil
}
