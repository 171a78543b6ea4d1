package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInputFieldEditing(t *testing.T) {
	f := &inputField{}

	for _, r := range "helo" {
		if _, changed := f.handleKey(runeKey(r)); !changed {
			t.Fatalf("typing %q reported no change", r)
		}
	}
	f.handleKey(key(tcell.KeyLeft))
	f.handleKey(runeKey('l'))
	if got := f.Text(); got != "hello" {
		t.Errorf("Text() = %q, want %q", got, "hello")
	}

	f.handleKey(key(tcell.KeyHome))
	if _, changed := f.handleKey(key(tcell.KeyBackspace2)); changed {
		t.Error("backspace at start reported a change")
	}
	if _, changed := f.handleKey(key(tcell.KeyDelete)); !changed {
		t.Error("delete at start reported no change")
	}
	if got := f.Text(); got != "ello" {
		t.Errorf("Text() = %q, want %q", got, "ello")
	}

	f.handleKey(key(tcell.KeyEnd))
	f.handleKey(key(tcell.KeyBackspace))
	if got := f.Text(); got != "ell" {
		t.Errorf("Text() = %q, want %q", got, "ell")
	}

	if _, changed := f.handleKey(key(tcell.KeyCtrlU)); !changed || f.Text() != "" {
		t.Errorf("Ctrl-U left %q", f.Text())
	}
	if handled, _ := f.handleKey(key(tcell.KeyF5)); handled {
		t.Error("F5 should not be handled by the field")
	}
}

func TestInputFieldInsertPaste(t *testing.T) {
	f := &inputField{}
	f.insert("ab")
	f.setCursor(1)
	f.insert("日本")
	if got := f.Text(); got != "a日本b" {
		t.Errorf("Text() = %q, want %q", got, "a日本b")
	}
	if f.cursor != 3 {
		t.Errorf("cursor = %d, want 3", f.cursor)
	}
}

func TestInputFieldDrawWideRunes(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(40, 5)

	f := &inputField{}
	f.insert("日本x")
	col := f.draw(s, 0, 0, 20, tcell.StyleDefault)

	// '[' then two double-width runes then 'x': cursor after 'x'.
	if col != 6 {
		t.Errorf("cursor column = %d, want 6", col)
	}
	if r, _, _, _ := s.GetContent(5, 0); r != 'x' {
		t.Errorf("cell 5 = %q, want 'x'", r)
	}
	if r, _, _, _ := s.GetContent(19, 0); r != ']' {
		t.Errorf("cell 19 = %q, want ']'", r)
	}
}

func TestInputFieldScroll(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(40, 5)

	f := &inputField{}
	f.insert("abcdefghijklmnop")
	col := f.draw(s, 0, 0, 10, tcell.StyleDefault)

	if f.scroll == 0 {
		t.Error("field did not scroll to show the cursor")
	}
	if col > 8 {
		t.Errorf("cursor column = %d, want inside the box", col)
	}
}
