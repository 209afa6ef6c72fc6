package ui

import (
	"os"

	"golang.org/x/term"

	"terminally-dating/app/pkg/config"
)

// Key is a decoded navigation keypress.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyEnter
	KeyQuit
)

// ReadKey blocks for a single keystroke on stdin in raw mode and decodes it.
// Arrow keys arrive as ESC [ A..D sequences; q quits; Enter confirms.
// Anything else is KeyNone.
func ReadKey() (Key, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return KeyNone, err
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 3)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return KeyNone, err
	}

	return DecodeKey(buf[:n]), nil
}

// DecodeKey maps a raw byte sequence to a Key.
func DecodeKey(b []byte) Key {
	if len(b) == 0 {
		return KeyNone
	}

	switch b[0] {
	case 'q':
		return KeyQuit
	case '\r', '\n':
		return KeyEnter
	case 0x1b: // ESC sequence
		if len(b) >= 3 && b[1] == '[' {
			switch b[2] {
			case 'A':
				return KeyUp
			case 'B':
				return KeyDown
			case 'C':
				return KeyRight
			case 'D':
				return KeyLeft
			}
		}
	}
	return KeyNone
}

// TerminalSize returns the current terminal dimensions, falling back to the
// configured defaults when stdout is not a terminal.
func TerminalSize() (width, height int) {
	cfg := config.Get()
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return cfg.Terminal.FallbackWidth, cfg.Terminal.FallbackHeight
	}
	return width, height
}
