package main

import "github.com/zyedidia/clipboard"

// clip reads the system clipboard, falling back to an in-process buffer
// when no clipboard tool is available.
type clip struct {
	external bool
	internal string
}

func newClip() (*clip, error) {
	if err := clipboard.Initialize(); err != nil {
		return &clip{}, err
	}
	return &clip{external: true}, nil
}

func (c *clip) read() (string, error) {
	if !c.external {
		return c.internal, nil
	}
	return clipboard.ReadAll("clipboard")
}

func (c *clip) write(s string) error {
	if !c.external {
		c.internal = s
		return nil
	}
	return clipboard.WriteAll(s, "clipboard")
}
