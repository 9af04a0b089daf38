package layout_test

import (
	"strings"
	"testing"

	"github.com/dasdy/termslides/layout"
	"github.com/dasdy/termslides/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("empty slide waits for confirmation", func(t *testing.T) {
		slide := layout.NewBuilder(3, 2).Build()

		assert.Equal(t, "   \n   ", slide.Text)
		assert.InDelta(t, 0, slide.Duration, 0)
		assert.True(t, slide.NeedsConfirmation)
	})

	t.Run("left down puts the last line on the row", func(t *testing.T) {
		slide := layout.NewBuilder(5, 4).AddTextLD("one\ntwo", at(0, 2), false, 0).Build()

		assert.Equal(t, []string{"     ", "one  ", "two  ", "     "}, strings.Split(slide.Text, "\n"))
	})

	t.Run("right up puts the last character on the column", func(t *testing.T) {
		slide := layout.NewBuilder(10, 1).AddTextRU("X", at(9, 0), false, 0).Build()

		assert.Equal(t, 9, strings.Index(slide.Text, "X"))
	})

	t.Run("right up measures the first line", func(t *testing.T) {
		slide := layout.NewBuilder(6, 2).AddTextRU("abc\nd", at(4, 0), false, 0).Build()

		assert.Equal(t, []string{"  abc ", "  d   "}, strings.Split(slide.Text, "\n"))
	})

	t.Run("right down shifts both axes", func(t *testing.T) {
		slide := layout.NewBuilder(5, 3).AddTextRD("ab\ncd", at(4, 2), false, 0).Build()

		assert.Equal(t, []string{"     ", "   ab", "   cd"}, strings.Split(slide.Text, "\n"))
	})

	t.Run("start alignment shifts like a literal 0", func(t *testing.T) {
		aligned := layout.NewBuilder(4, 2).
			AddTextRU("ab", model.Position{X: model.Align(model.AlignStart), Y: model.Align(model.AlignStart)}, false, 0).
			Build()
		literal := layout.NewBuilder(4, 2).AddTextRU("ab", at(0, 0), false, 0).Build()

		assert.Equal(t, literal, aligned)
	})

	t.Run("right shift past the left edge wraps to the far edge", func(t *testing.T) {
		slide := layout.NewBuilder(10, 3).AddTextRU("Hello", at(2, 0), false, 0).Build()

		assert.Equal(t, "        He", strings.Split(slide.Text, "\n")[0])
	})

	t.Run("bottom shift past the top edge wraps to the far edge", func(t *testing.T) {
		slide := layout.NewBuilder(3, 3).AddTextLD("a\nb\nc", at(0, 0), false, 0).Build()

		assert.Equal(t, []string{"   ", "a  ", "b  "}, strings.Split(slide.Text, "\n"))
	})

	t.Run("symbolic coordinates are not shifted", func(t *testing.T) {
		pos := model.Position{X: model.Align(model.AlignEnd), Y: model.Align(model.AlignEnd)}
		slide := layout.NewBuilder(4, 3).AddTextRD("ab\ncd", pos, false, 0).Build()

		assert.Equal(t, []string{"    ", "  ab", "  cd"}, strings.Split(slide.Text, "\n"))
	})

	t.Run("keeps timing", func(t *testing.T) {
		slide := layout.NewBuilder(1, 1).SetDuration(2.5).SetConfirmation(false).Build()

		assert.InDelta(t, 2.5, slide.Duration, 1e-9)
		assert.False(t, slide.NeedsConfirmation)
	})

	t.Run("rejects unknown corners", func(t *testing.T) {
		err := layout.NewBuilder(1, 1).Add(model.PlacementDirective{Corner: model.Corner(9), Text: "x"})

		require.ErrorIs(t, err, model.ErrUnknownCorner)
	})
}

func TestRender(t *testing.T) {
	spec := model.SlideSpec{
		Directives: []model.PlacementDirective{
			{Corner: model.LeftUp, Position: at(0, 0), Text: "title"},
			{
				Corner:     model.RightDown,
				Position:   model.Position{X: model.Align(model.AlignEnd), Y: model.Align(model.AlignEnd)},
				Indent:     1,
				Transition: true,
				Text:       "Bye",
			},
			{Corner: model.LeftDown, Position: model.Position{X: model.Align(model.AlignCenter), Y: model.At(-2)}, Text: "mid"},
		},
		Duration:          2,
		NeedsConfirmation: false,
	}

	t.Run("places every directive", func(t *testing.T) {
		slide, err := layout.Render(spec, 12, 4)
		require.NoError(t, err)

		lines := strings.Split(slide.Text, "\n")
		require.Len(t, lines, 4)

		assert.Equal(t, "title       ", lines[0])
		assert.Equal(t, "     mid    ", lines[2])
		assert.Equal(t, "         Bye", lines[3])
		assert.InDelta(t, 2, slide.Duration, 0)
		assert.False(t, slide.NeedsConfirmation)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := layout.Render(spec, 20, 6)
		require.NoError(t, err)

		second, err := layout.Render(spec, 20, 6)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("reports the failing block", func(t *testing.T) {
		bad := model.SlideSpec{Directives: []model.PlacementDirective{{Corner: model.Corner(7)}}}

		_, err := layout.Render(bad, 5, 5)

		require.ErrorIs(t, err, model.ErrUnknownCorner)
		assert.Contains(t, err.Error(), "block 0")
	})
}
