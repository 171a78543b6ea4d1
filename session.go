package meme

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
)

// DefaultExportName is the file name written by Session.ExportFile.
const DefaultExportName = "meme.png"

// Session holds the three current texts and, once the base image has
// loaded, the compositor that shows them. Every text change redraws the
// full scene. Nothing is drawn before the base image is attached.
//
// A Session is driven from a single event loop and is not safe for
// concurrent use.
type Session struct {
	opts  []Option
	texts Texts
	comp  *Compositor
}

// NewSession returns an unloaded session. opts are passed to the
// compositor created by Attach.
func NewSession(opts ...Option) *Session {
	return &Session{opts: opts}
}

// Loaded reports whether a base image has been attached.
func (s *Session) Loaded() bool {
	return s.comp != nil
}

// Load reads the base image at path and attaches it. On failure the session
// stays unloaded and nothing is drawn. Load returns ErrAlreadyLoaded without
// reading path if a base image is already attached.
func (s *Session) Load(path string) error {
	if s.comp != nil {
		return ErrAlreadyLoaded
	}
	img, err := LoadBase(path)
	if err != nil {
		Logger().Debug("meme: base image not loaded", "path", path, "err", err)
		return err
	}
	return s.Attach(img)
}

// Attach sets the base image, sizes the surface to it and renders the
// current texts. A session's surface is sized once: attaching to a loaded
// session returns ErrAlreadyLoaded and leaves the current image in place.
func (s *Session) Attach(base image.Image) error {
	if s.comp != nil {
		return ErrAlreadyLoaded
	}
	comp, err := NewCompositor(base, s.opts...)
	if err != nil {
		return err
	}
	s.comp = comp
	Logger().Info("meme: base image attached", "width", comp.Width(), "height", comp.Height())
	return s.comp.Render(s.texts)
}

// Texts returns the current texts.
func (s *Session) Texts() Texts {
	return s.texts
}

// SetText stores v as the text of slot and redraws the scene.
func (s *Session) SetText(slot Slot, v string) error {
	s.texts.Set(slot, v)
	return s.render()
}

// SetTexts replaces all three texts and redraws the scene.
func (s *Session) SetTexts(t Texts) error {
	s.texts = t
	return s.render()
}

func (s *Session) render() error {
	if s.comp == nil {
		return nil
	}
	return s.comp.Render(s.texts)
}

// Compositor returns the session compositor, or nil before load.
func (s *Session) Compositor() *Compositor {
	return s.comp
}

// Export writes the current composite as PNG.
func (s *Session) Export(w io.Writer) error {
	if s.comp == nil {
		return ErrNotLoaded
	}
	return s.comp.EncodePNG(w)
}

// ExportFile writes the current composite to dir/meme.png and returns the
// path written.
func (s *Session) ExportFile(dir string) (string, error) {
	return s.ExportAs(filepath.Join(dir, DefaultExportName))
}

// ExportAs writes the current composite as PNG to path.
func (s *Session) ExportAs(path string) (string, error) {
	if s.comp == nil {
		return "", ErrNotLoaded
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return "", fmt.Errorf("meme: export: %w", err)
	}
	if err := s.comp.EncodePNG(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("meme: export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("meme: export: %w", err)
	}
	Logger().Info("meme: exported", "path", path)
	return path, nil
}
