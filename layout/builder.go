package layout

import (
	"fmt"

	"github.com/dasdy/termslides/model"
)

// Builder composes one slide. The AddText* methods address the block by one of
// its corners; they shift literal coordinates so that corner lands on pos and
// then place the block on the canvas by its top-left corner.
type Builder struct {
	canvas            *Canvas
	duration          float64
	needsConfirmation bool
}

func NewBuilder(width, height int) *Builder {
	return &Builder{
		canvas:            NewCanvas(width, height),
		needsConfirmation: true,
	}
}

func (b *Builder) AddTextLU(text string, pos model.Position, transition bool, indent int) *Builder {
	b.canvas.Place(text, pos, transition, indent)

	return b
}

func (b *Builder) AddTextLD(text string, pos model.Position, transition bool, indent int) *Builder {
	pos.Y = pos.Y.Shift(-(lineCount(text) - 1))

	return b.AddTextLU(text, pos, transition, indent)
}

func (b *Builder) AddTextRU(text string, pos model.Position, transition bool, indent int) *Builder {
	pos.X = pos.X.Shift(-(firstLineLength(text) - 1))

	return b.AddTextLU(text, pos, transition, indent)
}

func (b *Builder) AddTextRD(text string, pos model.Position, transition bool, indent int) *Builder {
	pos.X = pos.X.Shift(-(firstLineLength(text) - 1))
	pos.Y = pos.Y.Shift(-(lineCount(text) - 1))

	return b.AddTextLU(text, pos, transition, indent)
}

// Add places a parsed directive using the placement function of its corner.
func (b *Builder) Add(d model.PlacementDirective) error {
	switch d.Corner {
	case model.LeftUp:
		b.AddTextLU(d.Text, d.Position, d.Transition, d.Indent)
	case model.LeftDown:
		b.AddTextLD(d.Text, d.Position, d.Transition, d.Indent)
	case model.RightUp:
		b.AddTextRU(d.Text, d.Position, d.Transition, d.Indent)
	case model.RightDown:
		b.AddTextRD(d.Text, d.Position, d.Transition, d.Indent)
	default:
		return fmt.Errorf("%w: %v", model.ErrUnknownCorner, d.Corner)
	}

	return nil
}

func (b *Builder) SetDuration(seconds float64) *Builder {
	b.duration = seconds

	return b
}

func (b *Builder) SetConfirmation(needed bool) *Builder {
	b.needsConfirmation = needed

	return b
}

func (b *Builder) Build() model.Slide {
	return model.Slide{
		Text:              b.canvas.String(),
		Duration:          b.duration,
		NeedsConfirmation: b.needsConfirmation,
	}
}

// Render lays out every directive of spec on a fresh width x height canvas.
func Render(spec model.SlideSpec, width, height int) (model.Slide, error) {
	b := NewBuilder(width, height)

	for i, d := range spec.Directives {
		if err := b.Add(d); err != nil {
			return model.Slide{}, fmt.Errorf("could not place block %d: %w", i, err)
		}
	}

	return b.SetDuration(spec.Duration).SetConfirmation(spec.NeedsConfirmation).Build(), nil
}

func lineCount(text string) int {
	return len(splitLines(text))
}

func firstLineLength(text string) int {
	return len([]rune(splitLines(text)[0]))
}
