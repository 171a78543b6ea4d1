package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// inputField is a single-line text box. Positions are in runes; drawing
// uses terminal cell widths so wide runes keep the cursor aligned.
type inputField struct {
	label string
	text  []rune

	cursor int // rune index
	scroll int // first visible rune
}

func (f *inputField) Text() string {
	return string(f.text)
}

func (f *inputField) setCursor(pos int) {
	f.cursor = max(0, min(pos, len(f.text)))
}

func (f *inputField) insert(s string) {
	rs := []rune(s)
	if len(rs) == 0 {
		return
	}
	text := make([]rune, 0, len(f.text)+len(rs))
	text = append(text, f.text[:f.cursor]...)
	text = append(text, rs...)
	text = append(text, f.text[f.cursor:]...)
	f.text = text
	f.cursor += len(rs)
}

func (f *inputField) deleteBack() bool {
	if f.cursor == 0 {
		return false
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	return true
}

func (f *inputField) deleteForward() bool {
	if f.cursor >= len(f.text) {
		return false
	}
	f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
	return true
}

// handleKey applies an editing key and reports whether the text changed.
func (f *inputField) handleKey(ev *tcell.EventKey) (handled, changed bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		f.setCursor(f.cursor - 1)
	case tcell.KeyRight:
		f.setCursor(f.cursor + 1)
	case tcell.KeyHome, tcell.KeyCtrlA:
		f.setCursor(0)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		f.setCursor(len(f.text))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return true, f.deleteBack()
	case tcell.KeyDelete:
		return true, f.deleteForward()
	case tcell.KeyCtrlU:
		changed = len(f.text) > 0
		f.text = f.text[:0]
		f.cursor = 0
		return true, changed
	case tcell.KeyRune:
		f.insert(string(ev.Rune()))
		return true, true
	default:
		return false, false
	}
	return true, false
}

// draw renders the field at (x, y) in width cells and returns the cursor
// column.
func (f *inputField) draw(s tcell.Screen, x, y, width int, style tcell.Style) int {
	inner := width - 2
	if inner < 1 {
		return x
	}

	// Scroll so the cursor stays inside the box.
	if f.cursor < f.scroll {
		f.scroll = f.cursor
	}
	for f.scroll < f.cursor && runewidth.StringWidth(string(f.text[f.scroll:f.cursor])) >= inner {
		f.scroll++
	}

	s.SetContent(x, y, '[', nil, style)
	col := x + 1
	cursorCol := col
	for i := f.scroll; i <= len(f.text); i++ {
		if i == f.cursor {
			cursorCol = col
		}
		if i == len(f.text) {
			break
		}
		w := runewidth.RuneWidth(f.text[i])
		if col+w > x+1+inner {
			break
		}
		s.SetContent(col, y, f.text[i], nil, style)
		col += w
	}
	for ; col < x+1+inner; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
	s.SetContent(x+width-1, y, ']', nil, style)
	return cursorCol
}
