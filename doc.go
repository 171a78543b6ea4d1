// Package meme renders text labels onto a base image and exports the
// result as PNG.
//
// # Overview
//
// A scene is a base image plus three texts: top-left, middle and
// bottom-right. Each non-empty text is drawn as a label, black text on a
// white rounded box, at a fixed position relative to the image size. The
// whole scene is redrawn from scratch whenever a text changes.
//
// # Quick Start
//
//	import "github.com/gogpu/meme"
//
//	s := meme.NewSession()
//	if err := s.Load("base.png"); err != nil {
//	    return err
//	}
//	_ = s.SetText(meme.TopLeft, "me")
//	_ = s.SetText(meme.BottomRight, "also me")
//	path, err := s.ExportFile(".") // writes ./meme.png
//
// # Layout
//
// The font size is 5% of the image width, floored to a whole pixel.
// Labels are anchored at normalized positions:
//   - top-left (0.05, 0.2), left aligned
//   - middle (0.4, 0.6), centered
//   - bottom-right (0.95, 0.9), right aligned
//
// A label box is the measured text plus 10px horizontal and 5px vertical
// padding on each side, centered vertically on the anchor. Boxes are not
// clipped to the image.
//
// # Drawing
//
// Drawing goes through github.com/gogpu/gg. The Compositor owns a gg
// Context sized to the base image; LabelRenderer accepts any Canvas, which
// gg.Context implements.
package meme
