package utils

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const maxImageDimension = 1024

// NormalizeImage decodes an uploaded label photo, downscales it so the
// longer side is at most 1024 pixels, and re-encodes it as JPEG at
// quality 85. On decode failure it returns the original bytes along
// with a non-nil error, so the caller can decide whether to forward
// the raw upload or abort.
func NormalizeImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return data, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return data, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
