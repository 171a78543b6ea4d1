package meme

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Compositor redraws the full scene, base image plus the three labels, onto
// a drawing surface the size of the base image. The surface is sized once
// and never resized.
//
// A Compositor is not safe for concurrent use.
type Compositor struct {
	dc     *gg.Context
	pixmap *gg.Pixmap
	base   []uint8 // base image in surface pixel layout

	font    *Font
	anchors Anchors
	labels  LabelRenderer

	fontSize int
}

// NewCompositor returns a compositor for base. The surface is w×h where
// w and h are the natural dimensions of base.
func NewCompositor(base image.Image, opts ...Option) (*Compositor, error) {
	b := base.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyBase
	}
	o := applyOptions(opts)

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), base, b.Min, draw.Src)

	pm := gg.NewPixmap(b.Dx(), b.Dy())
	return &Compositor{
		dc:      gg.NewContext(b.Dx(), b.Dy(), gg.WithPixmap(pm)),
		pixmap:  pm,
		base:    rgba.Pix,
		font:    o.font,
		anchors: o.anchors,
		labels:  LabelRenderer{Style: o.style, Measurer: o.measurer},
	}, nil
}

// Render clears the surface and draws the scene for t: the base image at
// the origin, then the top-left, middle and bottom-right labels. Empty texts
// produce no label. Rendering the same texts twice gives identical pixels.
func (c *Compositor) Render(t Texts) error {
	c.dc.Clear()
	// The base covers the whole surface, so source-over onto the cleared
	// surface is a plain copy.
	copy(c.pixmap.Data(), c.base)

	c.fontSize = c.labels.Style.FontSize(c.dc.Width())
	face := c.font.Face(float64(c.fontSize))
	c.dc.SetFont(face)

	log := Logger()
	log.Debug("meme: render", "width", c.dc.Width(), "height", c.dc.Height(), "font_size", c.fontSize)

	for i, l := range t.Labels(c.anchors) {
		_, drawn, err := c.labels.DrawLabel(c.dc, face, l)
		if err != nil {
			return err
		}
		if !drawn {
			log.Debug("meme: label skipped", "slot", Slot(i).String())
		}
	}
	return nil
}

// Width returns the surface width in pixels.
func (c *Compositor) Width() int { return c.dc.Width() }

// Height returns the surface height in pixels.
func (c *Compositor) Height() int { return c.dc.Height() }

// FontSize returns the font pixel size used by the last Render.
func (c *Compositor) FontSize() int { return c.fontSize }

// Image returns a copy of the current surface.
func (c *Compositor) Image() *image.RGBA {
	return c.pixmap.ToImage()
}

// EncodePNG writes the current surface as PNG.
func (c *Compositor) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}
