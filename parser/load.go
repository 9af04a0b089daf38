package parser

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dasdy/termslides/layout"
	"github.com/dasdy/termslides/model"
)

// SizeFunc reports the canvas dimensions. It is called once per slide.
type SizeFunc func() (width, height int)

// FixedSize returns a SizeFunc that always reports width x height.
func FixedSize(width, height int) SizeFunc {
	return func() (int, int) {
		return width, height
	}
}

func OpenPath(path string) (*os.File, error) {
	if filepath.IsAbs(path) {
		slog.DebugContext(logCtx, "Opening absolute path", "path", path)
	} else {
		slog.DebugContext(logCtx, "Opening relative path", "path", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}

func ParseFile(path string) ([]model.SlideSpec, error) {
	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	source, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	specs, err := Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return specs, nil
}

// Load parses the presentation in r and lays out every slide.
// No presentation is returned if any slide fails.
func Load(r io.Reader, size SizeFunc) (*model.Presentation, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	specs, err := Parse(string(source))
	if err != nil {
		return nil, err
	}

	return Build(specs, size)
}

func LoadFile(path string, size SizeFunc) (*model.Presentation, error) {
	specs, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	return Build(specs, size)
}

// Build renders each spec on its own canvas.
func Build(specs []model.SlideSpec, size SizeFunc) (*model.Presentation, error) {
	slides := make([]model.Slide, 0, len(specs))

	for i, spec := range specs {
		width, height := size()

		slide, err := layout.Render(spec, width, height)
		if err != nil {
			return nil, fmt.Errorf("error rendering slide %d: %w", i+1, err)
		}

		slides = append(slides, slide)
	}

	slog.DebugContext(logCtx, "presentation built", "slides", len(slides))

	return model.NewPresentation(slides), nil
}
