package main

import (
	"image"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

// previewTop is the first screen row of the composite preview.
const previewTop = 13

// preview shows the composite with upper-half-block cells: the foreground
// colour paints the top pixel of a cell, the background the bottom one.
// The scaled image is cached until the scene changes or the area resizes.
type preview struct {
	scaled     *image.RGBA
	cols, rows int
}

// invalidate drops the cached scale after a render.
func (p *preview) invalidate() {
	p.scaled = nil
}

// fit returns the pixel size of src scaled into cols x 2*rows, keeping the
// aspect ratio and never upscaling.
func fit(src image.Rectangle, cols, rows int) (int, int) {
	sw, sh := src.Dx(), src.Dy()
	if sw <= 0 || sh <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	scale := min(float64(cols)/float64(sw), float64(2*rows)/float64(sh), 1)
	return max(int(float64(sw)*scale), 1), max(int(float64(sh)*scale), 1)
}

// draw paints the composite into the cols x rows cell area at (x, y).
// snapshot is only called when the cached scale is stale.
func (p *preview) draw(s tcell.Screen, snapshot func() *image.RGBA, x, y, cols, rows int) {
	if p.scaled == nil || p.cols != cols || p.rows != rows {
		src := snapshot()
		w, h := fit(src.Bounds(), cols, rows)
		if w == 0 {
			return
		}
		p.scaled = image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(p.scaled, p.scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		p.cols, p.rows = cols, rows
	}

	b := p.scaled.Bounds()
	for py := 0; py < b.Dy(); py += 2 {
		for px := 0; px < b.Dx(); px++ {
			st := tcell.StyleDefault.Foreground(cellColor(p.scaled, px, py))
			if py+1 < b.Dy() {
				st = st.Background(cellColor(p.scaled, px, py+1))
			}
			s.SetContent(x+px, y+py/2, '▀', nil, st)
		}
	}
}

func cellColor(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
