package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	clearSequence = "\x1b[2J\x1b[H"

	DefaultWidth  = 80
	DefaultHeight = 24
)

// Console reads keys from in and draws on out.
type Console struct {
	in  *os.File
	out *os.File
}

func NewConsole(in, out *os.File) *Console {
	return &Console{in: in, out: out}
}

func StdConsole() *Console {
	return NewConsole(os.Stdin, os.Stdout)
}

func (c *Console) Write(p []byte) (int, error) {
	n, err := c.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}

	return n, nil
}

// Clear erases the screen and moves the cursor home.
func (c *Console) Clear() error {
	_, err := io.WriteString(c, clearSequence)

	return err
}

func (c *Console) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(c.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}

	return w, h, nil
}

// CanvasSize returns the override dimensions when they are positive and the
// terminal size otherwise. Outside a terminal it falls back to 80x24.
func (c *Console) CanvasSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}

	w, h, err := c.Size()
	if err != nil {
		slog.Debug("Using default canvas size", "error", err)

		w, h = DefaultWidth, DefaultHeight
	}

	if width > 0 {
		w = width
	}

	if height > 0 {
		h = height
	}

	return w, h
}

// ReadKey switches the input to raw mode for the duration of a single key press.
func (c *Console) ReadKey(ctx context.Context) (rune, error) {
	fd := int(c.in.Fd())

	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return 0, fmt.Errorf("entering raw mode: %w", err)
		}

		defer func() {
			if err := term.Restore(fd, state); err != nil {
				slog.Error("could not restore terminal", "error", err)
			}
		}()
	}

	return readKey(ctx, c.in)
}

// readKey returns the first character of the next chunk read from r. Escape
// sequences sent for a single key arrive in one chunk and count as one press.
// The read itself cannot be interrupted, so on cancellation it is abandoned.
func readKey(ctx context.Context, r io.Reader) (rune, error) {
	type result struct {
		key rune
		err error
	}

	done := make(chan result, 1)

	go func() {
		buf := make([]byte, 16)

		for {
			n, err := r.Read(buf)
			if n > 0 {
				key, _ := utf8.DecodeRune(buf[:n])
				done <- result{key: key}

				return
			}

			if err != nil {
				done <- result{err: err}

				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-done:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				return 0, io.EOF
			}

			return 0, fmt.Errorf("reading key: %w", res.err)
		}

		return res.key, nil
	}
}
