package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const maxWidth = 1280

// ProcessImage decodes a jpeg/png upload, downscales it to at most
// maxWidth, and re-encodes it as webp. Returns false when the payload is
// not a supported image.
func ProcessImage(r io.Reader) ([]byte, bool) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, false
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth {
		h := bounds.Dy() * maxWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
