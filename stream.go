package meme

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseAssignment parses a "slot=text" line such as "middle=hello".
// The text is everything after the first '=' and may be empty.
func ParseAssignment(line string) (Slot, string, error) {
	name, value, ok := strings.Cut(line, "=")
	if !ok {
		return 0, "", fmt.Errorf("meme: want slot=text, got %q", line)
	}
	slot, err := ParseSlot(name)
	if err != nil {
		return 0, "", err
	}
	return slot, value, nil
}

// Watch reads "slot=text" lines from r and applies each to s, redrawing the
// full scene per line. After every redraw frame is called, if non-nil.
// Malformed lines are logged and skipped. Watch returns when r is exhausted.
func Watch(r io.Reader, s *Session, frame func(*Session) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		slot, value, err := ParseAssignment(line)
		if err != nil {
			Logger().Warn("meme: ignoring input line", "line", line, "err", err)
			continue
		}
		if err := s.SetText(slot, value); err != nil {
			return err
		}
		if frame != nil {
			if err := frame(s); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}
