package meme

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

var baseColor = color.RGBA{R: 40, G: 90, B: 160, A: 255}

func newTestCompositor(t *testing.T, w, h int, opts ...Option) *Compositor {
	t.Helper()
	c, err := NewCompositor(solidImage(w, h, baseColor), opts...)
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	return c
}

func TestNewCompositorEmptyBase(t *testing.T) {
	_, err := NewCompositor(image.NewRGBA(image.Rect(0, 0, 0, 10)))
	if !errors.Is(err, ErrEmptyBase) {
		t.Errorf("NewCompositor(0x10) error = %v, want ErrEmptyBase", err)
	}
}

func TestCompositorSizeFromBase(t *testing.T) {
	// A base with a non-zero origin still gives a surface of its natural size.
	base := solidImage(300, 200, baseColor).SubImage(image.Rect(10, 20, 110, 70))
	c, err := NewCompositor(base)
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	if c.Width() != 100 || c.Height() != 50 {
		t.Errorf("surface = %dx%d, want 100x50", c.Width(), c.Height())
	}
}

func TestRenderFontSize(t *testing.T) {
	tests := []struct{ width, want int }{
		{1000, 50},
		{333, 16},
		{40, 2},
	}
	for _, tt := range tests {
		c := newTestCompositor(t, tt.width, 50)
		if err := c.Render(Texts{Middle: "x"}); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if c.FontSize() != tt.want {
			t.Errorf("width %d: FontSize() = %d, want %d", tt.width, c.FontSize(), tt.want)
		}
	}
}

func TestRenderAllEmptyEqualsBase(t *testing.T) {
	c := newTestCompositor(t, 120, 80)
	if err := c.Render(Texts{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(c.Image().Pix, solidImage(120, 80, baseColor).Pix) {
		t.Error("render with no texts differs from the base image")
	}
}

func TestRenderIdempotent(t *testing.T) {
	c := newTestCompositor(t, 400, 300)
	texts := Texts{TopLeft: "top", Middle: "middle", BottomRight: "bottom"}

	if err := c.Render(texts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	first := c.Image()
	if err := c.Render(texts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	second := c.Image()

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("two renders of the same texts differ")
	}
}

func TestRenderClearsPreviousLabels(t *testing.T) {
	c := newTestCompositor(t, 400, 300)
	if err := c.Render(Texts{Middle: "something"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := c.Render(Texts{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(c.Image().Pix, solidImage(400, 300, baseColor).Pix) {
		t.Error("clearing the text left label pixels behind")
	}
}

func TestRenderDrawsWhiteBoxAtAnchor(t *testing.T) {
	c := newTestCompositor(t, 400, 300)
	if err := c.Render(Texts{TopLeft: "label"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := c.Image()

	// Inside the box just right of the anchor (20, 60), above the text.
	// Font 20px: box is 30px tall, centered on y=60.
	got := img.RGBAAt(22, 47)
	if got.R < 240 || got.G < 240 || got.B < 240 {
		t.Errorf("pixel inside label box = %v, want white", got)
	}

	// Far from every anchor the base is untouched.
	if got := img.RGBAAt(390, 10); got != baseColor {
		t.Errorf("pixel away from labels = %v, want base %v", got, baseColor)
	}
}

func TestRenderOversizedText(t *testing.T) {
	c := newTestCompositor(t, 100, 60)
	long := "an extremely long caption that cannot possibly fit inside a tiny image"
	if err := c.Render(Texts{TopLeft: long, Middle: long, BottomRight: long}); err != nil {
		t.Fatalf("Render with oversized text: %v", err)
	}
}

func TestCompositorEncodePNG(t *testing.T) {
	c := newTestCompositor(t, 64, 48)
	if err := c.Render(Texts{Middle: "png"}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("EncodePNG wrote no bytes")
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("PNG size = %dx%d, want 64x48", cfg.Width, cfg.Height)
	}
}

func TestRenderCustomAnchors(t *testing.T) {
	a := DefaultAnchors()
	a[Middle] = Anchor{X: 0.5, Y: 0.5}
	c := newTestCompositor(t, 200, 200, WithAnchors(a))
	if err := c.Render(Texts{Middle: "m"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	// 10px font: box 20px tall around y=100; its top edge row is white.
	if got := c.Image().RGBAAt(100, 92); got.R < 240 {
		t.Errorf("pixel at moved anchor = %v, want white box", got)
	}
}
