package meme

import (
	"errors"
	"testing"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name string
		want Slot
	}{
		{"top-left", TopLeft},
		{"TOP_LEFT", TopLeft},
		{" middle ", Middle},
		{"bottom-right", BottomRight},
	}
	for _, tt := range tests {
		got, err := ParseSlot(tt.name)
		if err != nil {
			t.Errorf("ParseSlot(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSlot(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	_, err := ParseSlot("top")
	var se *SlotError
	if !errors.As(err, &se) || se.Name != "top" {
		t.Errorf("ParseSlot(\"top\") error = %v, want *SlotError{top}", err)
	}
}

func TestSlotAlign(t *testing.T) {
	tests := []struct {
		slot Slot
		want Align
	}{
		{TopLeft, AlignLeft},
		{Middle, AlignCenter},
		{BottomRight, AlignRight},
	}
	for _, tt := range tests {
		if got := tt.slot.Align(); got != tt.want {
			t.Errorf("%v.Align() = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestDefaultAnchors(t *testing.T) {
	a := DefaultAnchors()
	want := Anchors{{0.05, 0.2}, {0.4, 0.6}, {0.95, 0.9}}
	if a != want {
		t.Errorf("DefaultAnchors() = %v, want %v", a, want)
	}

	x, y := a[TopLeft].Resolve(1000, 500)
	if x != 50 || y != 100 {
		t.Errorf("Resolve(1000, 500) = (%v, %v), want (50, 100)", x, y)
	}
}

func TestTextsLabels(t *testing.T) {
	labels := Texts{TopLeft: "Hi", Middle: "mid", BottomRight: "end"}.Labels(DefaultAnchors())

	if got := labels[TopLeft].Text; got != "  Hi" {
		t.Errorf("top-left text = %q, want %q", got, "  Hi")
	}
	if got := labels[Middle].Text; got != "mid" {
		t.Errorf("middle text = %q, want %q", got, "mid")
	}
	if got := labels[BottomRight].Text; got != "end  " {
		t.Errorf("bottom-right text = %q, want %q", got, "end  ")
	}
	for _, s := range Slots {
		if labels[s].Align != s.Align() {
			t.Errorf("%v align = %v, want %v", s, labels[s].Align, s.Align())
		}
		if labels[s].Anchor != DefaultAnchors()[s] {
			t.Errorf("%v anchor = %v, want %v", s, labels[s].Anchor, DefaultAnchors()[s])
		}
	}
}

func TestTextsLabelsEmptyStaysEmpty(t *testing.T) {
	for _, l := range (Texts{}).Labels(DefaultAnchors()) {
		if l.Text != "" {
			t.Errorf("empty field produced label text %q", l.Text)
		}
	}
}

func TestTextsLabelsNFC(t *testing.T) {
	// "e" + combining acute accent composes to U+00E9.
	labels := Texts{Middle: "caf\u0065\u0301"}.Labels(DefaultAnchors())
	if got := labels[Middle].Text; got != "caf\u00e9" {
		t.Errorf("middle text = %q, want NFC %q", got, "caf\u00e9")
	}
}

func TestTextsGetSet(t *testing.T) {
	var tx Texts
	for _, s := range Slots {
		tx.Set(s, s.String())
		if got := tx.Get(s); got != s.String() {
			t.Errorf("Get(%v) = %q after Set, want %q", s, got, s.String())
		}
	}
	tx.Set(Slot(7), "ignored")
	if tx.Get(Slot(7)) != "" {
		t.Error("Get on unknown slot should return empty")
	}
}
