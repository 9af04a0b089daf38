package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dasdy/termslides/model"
	"github.com/schollz/progressbar/v3"
)

// Deck is everything the HTML page needs to show a rendered presentation.
type Deck struct {
	Title  string
	Width  int
	Height int
	Slides []model.Slide
}

const pageStyle = `body{background:#111;color:#ddd;font-family:monospace;margin:0;padding:1em}
section{margin:0 auto 2em auto;width:max-content}
pre{border:1px solid #444;margin:0;padding:0;line-height:1.2}
header{color:#888;font-size:smaller}`

// SlidePage renders one slide as a fixed-size preformatted block.
func SlidePage(index int, slide model.Slide) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		timing := "waits for a key"
		if !slide.NeedsConfirmation {
			timing = strconv.FormatFloat(slide.Duration, 'f', -1, 64) + "s"
		}

		_, err := fmt.Fprintf(w, "<section id=\"slide-%d\"><header>%d &middot; %s</header><pre>%s</pre></section>\n",
			index+1, index+1, templ.EscapeString(timing), templ.EscapeString(slide.Text))

		return err
	})
}

// DeckPage renders the whole deck. After each slide onSlide is called when set.
func DeckPage(deck Deck, onSlide func()) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><meta charset=\"UTF-8\"><title>%s</title><style>%s</style></head><body>\n",
			templ.EscapeString(deck.Title), pageStyle); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "<header>%d slides, %dx%d</header>\n", len(deck.Slides), deck.Width, deck.Height); err != nil {
			return err
		}

		for i, slide := range deck.Slides {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := SlidePage(i, slide).Render(ctx, w); err != nil {
				return fmt.Errorf("could not render slide %d: %w", i+1, err)
			}

			if onSlide != nil {
				onSlide()
			}
		}

		_, err := io.WriteString(w, "</body></html>\n")

		return err
	})
}

// RenderHTML renders the whole deck into memory. bar may be nil.
func RenderHTML(ctx context.Context, deck Deck, bar *progressbar.ProgressBar) (*bytes.Buffer, error) {
	var onSlide func()
	if bar != nil {
		onSlide = func() {
			if err := bar.Add(1); err != nil {
				slog.Error("Error updating progress", "error", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := DeckPage(deck, onSlide).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("could not render deck: %w", err)
	}

	return &buf, nil
}

// WriteHTML renders deck into a buffer first so that a failed render leaves w
// untouched.
func WriteHTML(ctx context.Context, w io.Writer, deck Deck, bar *progressbar.ProgressBar) error {
	buf, err := RenderHTML(ctx, deck, bar)
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("could not write deck: %w", err)
	}

	return nil
}

// WriteHTMLFile only creates or truncates path once the deck rendered.
func WriteHTMLFile(ctx context.Context, path string, deck Deck, bar *progressbar.ProgressBar) error {
	buf, err := RenderHTML(ctx, deck, bar)
	if err != nil {
		return err
	}

	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()

		return fmt.Errorf("could not write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", path, err)
	}

	return nil
}
