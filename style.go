package meme

import (
	"image/color"
	"math"
)

// Style holds the fixed drawing constants of a compositor.
type Style struct {
	// FontSizeRatio is the font pixel size as a fraction of canvas width.
	// The result is floored to a whole pixel.
	FontSizeRatio float64

	// PaddingX and PaddingY are added on each side of the measured text
	// to get the label box.
	PaddingX float64
	PaddingY float64

	// CornerRatio is the corner radius as a fraction of box height.
	CornerRatio float64

	// StrokeBackground strokes the box outline in the background colour,
	// with a line width of StrokeRatio times the box height and round
	// joins, growing the box outward by half that width.
	StrokeBackground bool
	StrokeRatio      float64

	Background color.Color
	Foreground color.Color
}

// DefaultStyle returns the standard style: 5% font, 10px/5px padding,
// black text on white rounded boxes.
func DefaultStyle() Style {
	return Style{
		FontSizeRatio:    0.05,
		PaddingX:         10,
		PaddingY:         5,
		CornerRatio:      0.25,
		StrokeBackground: true,
		StrokeRatio:      0.5,
		Background:       color.White,
		Foreground:       color.Black,
	}
}

// FontSize returns the font pixel size for a canvas of the given width.
func (s Style) FontSize(canvasWidth int) int {
	return int(math.Floor(float64(canvasWidth) * s.FontSizeRatio))
}
