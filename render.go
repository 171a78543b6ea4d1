package meme

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface a label is rendered onto.
// *gg.Context implements Canvas.
type Canvas interface {
	Width() int
	Height() int

	SetColor(col color.Color)
	SetLineWidth(width float64)
	SetLineJoin(join gg.LineJoin)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	FillPreserve() error
	Fill() error
	Stroke() error

	DrawString(s string, x, y float64)
}

var _ Canvas = (*gg.Context)(nil)

// LabelRenderer draws one label: a rounded background box sized to the
// measured text, then the text itself centered vertically on the anchor.
type LabelRenderer struct {
	Style    Style
	Measurer Measurer
}

// DrawLabel renders l onto c using face, which must already be the active
// font of c. Empty labels are skipped without touching c. The returned box
// is the background rectangle; ok is false when the label was skipped.
// Boxes wider than the canvas are drawn as-is.
func (r *LabelRenderer) DrawLabel(c Canvas, face text.Face, l Label) (box Box, ok bool, err error) {
	if l.Text == "" {
		return Box{}, false, nil
	}

	x, y := l.Anchor.Resolve(c.Width(), c.Height())
	fontSize := int(face.Size())
	textWidth := r.measurer().Advance(l.Text, face)
	box = LayoutBox(x, y, textWidth, fontSize, l.Align, r.Style)

	tracePath(c, RoundedRectPath(box.X, box.Y, box.W, box.H, UniformRadii(box.H*r.Style.CornerRatio)))
	c.SetColor(r.Style.Background)
	if r.Style.StrokeBackground {
		c.SetLineWidth(box.H * r.Style.StrokeRatio)
		c.SetLineJoin(gg.LineJoinRound)
		if err := c.FillPreserve(); err != nil {
			return box, true, err
		}
		if err := c.Stroke(); err != nil {
			return box, true, err
		}
	} else if err := c.Fill(); err != nil {
		return box, true, err
	}

	// DrawString lays the run out with the face's own advances, so the text
	// is aligned by those even when the box came from another measurer.
	drawnWidth := textWidth
	if _, ok := r.measurer().(FaceMeasurer); !ok {
		drawnWidth = FaceMeasurer{}.Advance(l.Text, face)
	}
	c.SetColor(r.Style.Foreground)
	c.DrawString(l.Text, x-drawnWidth*l.Align.factor(), middleBaseline(y, face))

	Logger().Debug("meme: label drawn",
		"text", l.Text, "align", l.Align.String(),
		"box_x", box.X, "box_y", box.Y, "box_w", box.W, "box_h", box.H)
	return box, true, nil
}

func (r *LabelRenderer) measurer() Measurer {
	if r.Measurer == nil {
		return FaceMeasurer{}
	}
	return r.Measurer
}

// middleBaseline returns the baseline that puts the vertical middle of the
// font's glyph box on y.
func middleBaseline(y float64, face text.Face) float64 {
	m := face.Metrics()
	return y + (m.Ascent-m.Descent)/2
}
