package meme

import (
	"fmt"
	"image"
	"io"
	"os"

	// Registered base image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeBase decodes a base image in PNG, JPEG, GIF, BMP, TIFF or WebP format.
func DecodeBase(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseImage, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyBase
	}
	Logger().Debug("meme: base image decoded", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// LoadBase reads and decodes the base image at path.
func LoadBase(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseImage, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return DecodeBase(f)
}
