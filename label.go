package meme

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Anchor is a position normalized to the canvas, with X and Y in [0, 1].
// It is scaled by the canvas width and height at draw time.
type Anchor struct {
	X, Y float64
}

// Resolve returns the absolute pixel position of a on a w×h canvas.
func (a Anchor) Resolve(w, h int) (x, y float64) {
	return float64(w) * a.X, float64(h) * a.Y
}

// Align is the horizontal alignment of a label relative to its anchor.
type Align int

const (
	// AlignLeft places the label box so its left edge is on the anchor.
	AlignLeft Align = iota
	// AlignCenter centers the label box on the anchor.
	AlignCenter
	// AlignRight places the label box so its right edge is on the anchor.
	AlignRight
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// factor is the fraction of the box width that lies left of the anchor.
func (a Align) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Slot identifies one of the three label positions. Slots are rendered in
// ascending order.
type Slot int

const (
	TopLeft Slot = iota
	Middle
	BottomRight

	numSlots = 3
)

// Slots lists every slot in render order.
var Slots = [numSlots]Slot{TopLeft, Middle, BottomRight}

var slotNames = [numSlots]string{"top-left", "middle", "bottom-right"}

// String returns the slot name used by the command line tools.
func (s Slot) String() string {
	if s < 0 || s >= numSlots {
		return "unknown"
	}
	return slotNames[s]
}

// Align returns the fixed alignment of labels in slot s.
func (s Slot) Align() Align {
	switch s {
	case TopLeft:
		return AlignLeft
	case BottomRight:
		return AlignRight
	default:
		return AlignCenter
	}
}

// ParseSlot returns the slot with the given name ("top-left", "middle",
// "bottom-right"). Underscores and case are ignored.
func ParseSlot(name string) (Slot, error) {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	for i, sn := range slotNames {
		if n == sn {
			return Slot(i), nil
		}
	}
	return 0, &SlotError{Name: name}
}

// Anchors maps each slot to its normalized position.
type Anchors [numSlots]Anchor

// DefaultAnchors returns the standard label positions.
func DefaultAnchors() Anchors {
	return Anchors{
		TopLeft:     {X: 0.05, Y: 0.2},
		Middle:      {X: 0.4, Y: 0.6},
		BottomRight: {X: 0.95, Y: 0.9},
	}
}

// Texts holds the current value of the three text fields.
type Texts struct {
	TopLeft     string
	Middle      string
	BottomRight string
}

// Get returns the text of slot s.
func (t Texts) Get(s Slot) string {
	switch s {
	case TopLeft:
		return t.TopLeft
	case Middle:
		return t.Middle
	case BottomRight:
		return t.BottomRight
	}
	return ""
}

// Set stores v as the text of slot s. Unknown slots are ignored.
func (t *Texts) Set(s Slot, v string) {
	switch s {
	case TopLeft:
		t.TopLeft = v
	case Middle:
		t.Middle = v
	case BottomRight:
		t.BottomRight = v
	}
}

// Label is one text string with its anchor and alignment.
type Label struct {
	Text   string
	Anchor Anchor
	Align  Align
}

// edgePad keeps the top-left and bottom-right text off the box edge that
// sits on the anchor.
const edgePad = "  "

// Labels builds the labels for t in render order. Text is normalized to NFC.
// The top-left text gets two leading spaces and the bottom-right text two
// trailing spaces; empty fields stay empty so they are skipped.
func (t Texts) Labels(anchors Anchors) [numSlots]Label {
	var out [numSlots]Label
	for _, s := range Slots {
		txt := norm.NFC.String(t.Get(s))
		if txt != "" {
			switch s {
			case TopLeft:
				txt = edgePad + txt
			case BottomRight:
				txt += edgePad
			}
		}
		out[s] = Label{Text: txt, Anchor: anchors[s], Align: s.Align()}
	}
	return out
}
