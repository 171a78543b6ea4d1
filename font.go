package meme

import (
	"fmt"
	"os"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a loaded font family. Faces at any pixel size are created from it.
type Font struct {
	source *text.FontSource
	data   []byte
}

// ParseFont loads a font from TTF or OTF data.
func ParseFont(data []byte) (*Font, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFont, err)
	}
	return &Font{source: src, data: data}, nil
}

// LoadFont loads a font from a TTF or OTF file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFont, err)
	}
	return ParseFont(data)
}

// DefaultFont returns the Go Regular sans-serif font.
func DefaultFont() *Font {
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		panic("meme: embedded font: " + err.Error())
	}
	return f
}

// Face returns a face of f at size pixels.
func (f *Font) Face(size float64) text.Face {
	return f.source.Face(size)
}

// Name returns the font's family name.
func (f *Font) Name() string {
	return f.source.Name()
}

// Data returns the raw font data, e.g. for NewShapingMeasurer.
func (f *Font) Data() []byte {
	return f.data
}
