package meme

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/math/fixed"
)

// Measurer returns the horizontal advance of s in face, in pixels.
type Measurer interface {
	Advance(s string, face text.Face) float64
}

// FaceMeasurer sums the per-glyph advances reported by the face.
// It is the default measurer.
type FaceMeasurer struct{}

// Advance implements Measurer.
func (FaceMeasurer) Advance(s string, face text.Face) float64 {
	w, _ := text.Measure(s, face)
	return w
}

// ShapingMeasurer measures text after HarfBuzz shaping, so kerning pairs and
// ligatures narrow the box the same way they narrow the rendered run.
// Only the box is sized from the shaped advance: gg draws the text with the
// face's own advances, and LabelRenderer aligns the text by those, so a
// shaped box can be slightly wider or narrower than the glyphs inside it.
//
// ShapingMeasurer is safe for concurrent use.
type ShapingMeasurer struct {
	font *font.Font
	pool sync.Pool
}

// NewShapingMeasurer parses TTF/OTF data for shaping. The data must be the
// same font the faces passed to Advance were created from.
func NewShapingMeasurer(data []byte) (*ShapingMeasurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFont, err)
	}
	m := &ShapingMeasurer{font: face.Font}
	m.pool.New = func() any { return &shaping.HarfbuzzShaper{} }
	return m, nil
}

// Advance implements Measurer. Only the face size is used.
func (m *ShapingMeasurer) Advance(s string, face text.Face) float64 {
	if s == "" || face == nil {
		return 0
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      fixed.Int26_6(face.Size() * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.pool.Put(hb)

	return float64(out.Advance) / 64
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
