// Package cover turns cover image bytes into display-ready thumbnails.
package cover

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// ErrNotAnImage indicates the supplied bytes are not a decodable image.
var ErrNotAnImage = errors.New("cover: data is not an image")

// Thumbnail decodes a cover image, scales it down to the given width
// (preserving aspect ratio; images already narrower are left alone) and
// re-encodes it. JPEG input stays JPEG, everything else becomes PNG.
// Returns the encoded bytes and the file extension of the chosen
// format.
func Thumbnail(data []byte, width int) ([]byte, string, error) {
	if !filetype.IsImage(data) {
		return nil, "", ErrNotAnImage
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("cover: decode: %w", err)
	}

	if width > 0 && img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	format, ext := imaging.PNG, "png"
	if t, err := filetype.Match(data); err == nil && t == matchers.TypeJpeg {
		format, ext = imaging.JPEG, "jpg"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, "", fmt.Errorf("cover: encode: %w", err)
	}
	return buf.Bytes(), ext, nil
}
