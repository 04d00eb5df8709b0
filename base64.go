package blackbg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL) into
// an image.Image. It returns the decoded image and the detected format string.
func DecodeBase64Image(input string) (image.Image, string, error) {
	raw := stripDataPrefix(input)

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", &DecodeError{Err: fmt.Errorf("decode base64: %w", err)}
	}

	return DecodeImageBytes(data)
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", &EncodeError{Err: err}
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// RemoveBlackBackgroundBase64 removes the black background from a
// base64-encoded image and returns the result as base64 PNG.
func RemoveBlackBackgroundBase64(input string, t Thresholds) (string, Stats, error) {
	img, _, err := DecodeBase64Image(input)
	if err != nil {
		return "", Stats{}, err
	}

	out, stats, err := RemoveBlackBackground(img, t)
	if err != nil {
		return "", Stats{}, &DecodeError{Err: err}
	}

	encoded, err := EncodePNGToBase64(out)
	if err != nil {
		return "", Stats{}, err
	}
	return encoded, stats, nil
}

// stripDataPrefix returns the base64 payload of a data URL, or input itself
// when it carries no "data:" scheme. Surrounding whitespace is dropped.
func stripDataPrefix(input string) string {
	payload := strings.TrimSpace(input)
	if len(payload) >= 5 && strings.EqualFold(payload[:5], "data:") {
		_, payload, _ = strings.Cut(payload, ",")
	}
	return strings.TrimSpace(payload)
}
