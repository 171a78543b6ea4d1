package meme

import "github.com/gogpu/gg"

// Radii holds per-corner radii of a rounded rectangle. Zero corners are
// square.
type Radii struct {
	TL, TR, BR, BL float64
}

// UniformRadii returns Radii with r on every corner.
func UniformRadii(r float64) Radii {
	return Radii{TL: r, TR: r, BR: r, BL: r}
}

// RoundedRectPath returns a closed rounded-rectangle outline. The path
// starts on the top edge after the top-left corner and runs clockwise; each
// corner is a quadratic curve whose control point is the rectangle corner.
func RoundedRectPath(x, y, w, h float64, r Radii) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(x+r.TL, y)
	p.LineTo(x+w-r.TR, y)
	p.QuadraticTo(x+w, y, x+w, y+r.TR)
	p.LineTo(x+w, y+h-r.BR)
	p.QuadraticTo(x+w, y+h, x+w-r.BR, y+h)
	p.LineTo(x+r.BL, y+h)
	p.QuadraticTo(x, y+h, x, y+h-r.BL)
	p.LineTo(x, y+r.TL)
	p.QuadraticTo(x, y, x+r.TL, y)
	p.Close()
	return p
}

// Box is an axis-aligned label background in canvas pixels.
type Box struct {
	X, Y, W, H float64
}

// LayoutBox places the background box of a label whose text is textWidth
// pixels wide, anchored at (x, y). The box is padded on every side, placed
// horizontally by align and always centered vertically on y.
func LayoutBox(x, y, textWidth float64, fontSize int, align Align, st Style) Box {
	w := textWidth + 2*st.PaddingX
	h := float64(fontSize) + 2*st.PaddingY
	return Box{
		X: x - w*align.factor(),
		Y: y - h/2,
		W: w,
		H: h,
	}
}

// tracePath replays p onto the canvas path.
func tracePath(c Canvas, p *gg.Path) {
	p.Iterate(func(verb gg.PathVerb, pt []float64) {
		switch verb {
		case gg.MoveTo:
			c.MoveTo(pt[0], pt[1])
		case gg.LineTo:
			c.LineTo(pt[0], pt[1])
		case gg.QuadTo:
			c.QuadraticTo(pt[0], pt[1], pt[2], pt[3])
		case gg.CubicTo:
			c.CubicTo(pt[0], pt[1], pt[2], pt[3], pt[4], pt[5])
		case gg.Close:
			c.ClosePath()
		}
	})
}
