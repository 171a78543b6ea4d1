// Command memeedit is a terminal editor for meme labels. Every edit redraws
// the full scene and the preview below the fields; Ctrl-S writes meme.png.
//
//	memeedit -base images/base-image.png -out .
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/meme"
)

// baseLoaded is posted to the event loop when the base image goroutine
// finishes.
type baseLoaded struct {
	img image.Image
	err error
}

type editor struct {
	screen  tcell.Screen
	session *meme.Session
	clip    *clip
	outDir  string

	fields  [3]*inputField
	focused int
	status  string
	preview preview
}

func newEditor(screen tcell.Screen, session *meme.Session, c *clip, outDir string) *editor {
	ed := &editor{
		screen:  screen,
		session: session,
		clip:    c,
		outDir:  outDir,
	}
	for i, slot := range meme.Slots {
		ed.fields[i] = &inputField{label: slot.String()}
	}
	return ed
}

func main() {
	var (
		base    = flag.String("base", "images/base-image.png", "base image")
		outDir  = flag.String("out", ".", "directory meme.png is written to")
		logPath = flag.String("log", "", "write debug log to this file")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		meme.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	c, err := newClip()
	if err != nil {
		meme.Logger().Warn("memeedit: system clipboard unavailable, using internal buffer", "err", err)
	}

	ed := newEditor(screen, meme.NewSession(), c, *outDir)
	ed.loadAsync(*base)
	ed.run()
}

// loadAsync decodes the base image off the event loop and posts the result
// back to it. The first render waits for that event.
func (ed *editor) loadAsync(path string) {
	go func() {
		img, err := meme.LoadBase(path)
		_ = ed.screen.PostEvent(tcell.NewEventInterrupt(baseLoaded{img: img, err: err}))
	}()
}

func (ed *editor) run() {
	for {
		ed.draw()
		ed.screen.Show()

		if ed.handleEvent(ed.screen.PollEvent()) {
			return
		}
	}
}

// handleEvent applies one event and reports whether the editor should quit.
func (ed *editor) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		ed.screen.Sync()
	case *tcell.EventKey:
		return ed.handleKey(ev)
	case *tcell.EventInterrupt:
		if res, ok := ev.Data().(baseLoaded); ok {
			ed.attach(res)
		}
	case nil:
		return true
	}
	return false
}

func (ed *editor) attach(res baseLoaded) {
	if res.err != nil {
		// A missing base image leaves the editor blank.
		meme.Logger().Debug("memeedit: base image not loaded", "err", res.err)
		return
	}
	if err := ed.session.Attach(res.img); err != nil {
		meme.Logger().Debug("memeedit: attach failed", "err", err)
		return
	}
	ed.preview.invalidate()
	ed.status = ed.describe()
}

func (ed *editor) describe() string {
	c := ed.session.Compositor()
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%dx%d, font %dpx", c.Width(), c.Height(), c.FontSize())
}

// handleKey returns true when the editor should quit.
func (ed *editor) handleKey(ev *tcell.EventKey) bool {
	f := ed.fields[ed.focused]
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return true
	case tcell.KeyTab, tcell.KeyDown, tcell.KeyEnter:
		ed.focused = (ed.focused + 1) % len(ed.fields)
		return false
	case tcell.KeyBacktab, tcell.KeyUp:
		ed.focused = (ed.focused + len(ed.fields) - 1) % len(ed.fields)
		return false
	case tcell.KeyCtrlS:
		ed.export()
		return false
	case tcell.KeyCtrlC:
		if err := ed.clip.write(f.Text()); err != nil {
			ed.status = "copy failed: " + err.Error()
		}
		return false
	case tcell.KeyCtrlV:
		s, err := ed.clip.read()
		if err != nil {
			ed.status = "paste failed: " + err.Error()
			return false
		}
		f.insert(s)
		ed.update()
		return false
	}

	if _, changed := f.handleKey(ev); changed {
		ed.update()
	}
	return false
}

// update pushes the focused field into the session, redrawing the scene.
func (ed *editor) update() {
	slot := meme.Slots[ed.focused]
	if err := ed.session.SetText(slot, ed.fields[ed.focused].Text()); err != nil {
		ed.status = "render failed: " + err.Error()
		return
	}
	if ed.session.Loaded() {
		ed.preview.invalidate()
		ed.status = ed.describe()
	}
}

func (ed *editor) export() {
	path, err := ed.session.ExportFile(ed.outDir)
	switch {
	case errors.Is(err, meme.ErrNotLoaded):
		// Nothing to save yet.
	case err != nil:
		ed.status = err.Error()
	default:
		ed.status = "saved " + path
	}
}

func (ed *editor) draw() {
	s := ed.screen
	s.Clear()
	w, h := s.Size()

	plain := tcell.StyleDefault
	bold := plain.Bold(true)
	inv := plain.Reverse(true)

	drawStr(s, 1, 0, "meme editor", bold)

	labelW := 0
	for _, f := range ed.fields {
		labelW = max(labelW, runewidth.StringWidth(f.label))
	}

	cursorX, cursorY := -1, -1
	for i, f := range ed.fields {
		y := 2 + i*2
		style := plain
		if i == ed.focused {
			style = inv
		}
		drawStr(s, 1, y, f.label, plain)
		col := f.draw(s, labelW+3, y, max(w-labelW-4, 4), style)
		if i == ed.focused {
			cursorX, cursorY = col, y
		}
	}

	drawStr(s, 1, 9, ed.status, plain)
	drawStr(s, 1, 11, "Tab next  Ctrl-S save meme.png  Ctrl-C/Ctrl-V copy/paste  Esc quit", plain.Dim(true))

	if c := ed.session.Compositor(); c != nil {
		ed.preview.draw(s, c.Image, 1, previewTop, w-2, h-previewTop)
	}

	if cursorX >= 0 {
		s.ShowCursor(cursorX, cursorY)
	} else {
		s.HideCursor()
	}
}

// drawStr renders str at (x, y) advancing by each rune's cell width.
func drawStr(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
