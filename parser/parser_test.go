package parser_test

import (
	"strings"
	"testing"

	"github.com/dasdy/termslides/model"
	"github.com/dasdy/termslides/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, source string) model.SlideSpec {
	t.Helper()

	specs, err := parser.Parse(source)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	return specs[0]
}

func TestParseSection(t *testing.T) {
	t.Run("reads a block without duration", func(t *testing.T) {
		spec := parseOne(t, "```lu0;0\nHello\n```")

		require.Len(t, spec.Directives, 1)

		d := spec.Directives[0]
		assert.Equal(t, model.LeftUp, d.Corner)
		assert.Equal(t, model.Position{X: model.At(0), Y: model.At(0)}, d.Position)
		assert.Equal(t, "Hello", d.Text)
		assert.Equal(t, 0, d.Indent)
		assert.False(t, d.Transition)
		assert.InDelta(t, 0, spec.Duration, 0)
		assert.True(t, spec.NeedsConfirmation)
	})

	t.Run("reads duration, alignment and indent", func(t *testing.T) {
		spec := parseOne(t, "2s ```rd~2;~2;1\nBye\n```")

		require.Len(t, spec.Directives, 1)

		d := spec.Directives[0]
		assert.Equal(t, model.RightDown, d.Corner)
		assert.Equal(t, model.Align(model.AlignEnd), d.Position.X)
		assert.Equal(t, model.Align(model.AlignEnd), d.Position.Y)
		assert.Equal(t, 1, d.Indent)
		assert.InDelta(t, 2, spec.Duration, 1e-9)
		assert.False(t, spec.NeedsConfirmation)
	})

	t.Run("accepts duration spellings", func(t *testing.T) {
		cases := map[string]float64{
			"3 ```lu0;0\nA\n```":                     3,
			"3sec ```lu0;0\nA\n```":                  3,
			"1.5seconds ```lu0;0\nA\n```":            1.5,
			"1,5 s ```lu0;0\nA\n```":                 1.5,
			"wait 0,25s ```lu0;0\nA\n```":            0.25,
			"1,5 sec\n```lu0;0\nA\n```":              1.5,
			"4s\n\n```lu0;0\nA\n```":                 4,
			"Year 2024 ```lu0;0\nA\n```":             2024,
			"Year 2024\n```lu0;0\nA\n```":            2024,
			"abc2s ```lu0;0\nA\n```":                 2,
			"abc2s\n```lu0;0\nA\n```":                2,
			"5.\t```lu0;0\nA\n```":                   5,
			"1.2.3s ```lu0;0\nA\n```":                2.3,
			"2s\n\nnotes\n```lu0;0\nA\n```":          0,
			"Slide two\n```lu0;0\nA\n```":            0,
			"Years ```lu0;0\nA\n```":                 0,
			"0s ```lu0;0\nA\n```":                    0,
			"5s\n```lu0;0\nA\n```\n```lu0;1\nB\n```": 5,
		}

		for source, want := range cases {
			spec := parseOne(t, source)

			assert.InDelta(t, want, spec.Duration, 1e-9, source)
			assert.Equal(t, want == 0, spec.NeedsConfirmation, source)
		}
	})

	t.Run("first block decides timing", func(t *testing.T) {
		spec := parseOne(t, "3s ```lu0;0\nA\n```\n5s ```lu0;1\nB\n```")

		require.Len(t, spec.Directives, 2)
		assert.InDelta(t, 3, spec.Duration, 0)
		assert.Equal(t, "B", spec.Directives[1].Text)
		assert.Equal(t, model.At(1), spec.Directives[1].Position.Y)
	})

	t.Run("duration before the previous block is not reused", func(t *testing.T) {
		spec := parseOne(t, "```lu0;0\n2s\n```\n```lu0;1\nB\n```")

		require.Len(t, spec.Directives, 2)
		assert.True(t, spec.NeedsConfirmation)
	})

	t.Run("reads transition from the closing fence", func(t *testing.T) {
		spec := parseOne(t, "```lu0;0\nA\n```+\n```lu0;1\nB\n```")

		require.Len(t, spec.Directives, 2)
		assert.True(t, spec.Directives[0].Transition)
		assert.False(t, spec.Directives[1].Transition)
	})

	t.Run("keeps multi-line text", func(t *testing.T) {
		spec := parseOne(t, "```lu0;0\nfirst\n  second\r\n\nlast\n```")

		require.Len(t, spec.Directives, 1)
		assert.Equal(t, "first\n  second\n\nlast", spec.Directives[0].Text)
	})

	t.Run("reads negative offsets and center tokens", func(t *testing.T) {
		spec := parseOne(t, "```ld-3;m\nA\n```")

		require.Len(t, spec.Directives, 1)
		assert.Equal(t, model.LeftDown, spec.Directives[0].Corner)
		assert.Equal(t, model.At(-3), spec.Directives[0].Position.X)
		assert.Equal(t, model.Align(model.AlignCenter), spec.Directives[0].Position.Y)
	})

	t.Run("corner codes ignore case", func(t *testing.T) {
		spec := parseOne(t, "```RU~1; 2 ;\nA\n```")

		require.Len(t, spec.Directives, 1)
		assert.Equal(t, model.RightUp, spec.Directives[0].Corner)
		assert.Equal(t, model.Align(model.AlignCenter), spec.Directives[0].Position.X)
		assert.Equal(t, model.At(2), spec.Directives[0].Position.Y)
		assert.Equal(t, 0, spec.Directives[0].Indent)
	})

	t.Run("ignores text outside blocks", func(t *testing.T) {
		source := "Some notes\n```go\nfmt.Println(1)\n```\n```lu1;1\nX\n```\ntrailing words"
		spec := parseOne(t, source)

		require.Len(t, spec.Directives, 1)
		assert.Equal(t, "X", spec.Directives[0].Text)
	})

	t.Run("section without blocks is a blank slide", func(t *testing.T) {
		spec := parseOne(t, "just prose")

		assert.Empty(t, spec.Directives)
		assert.InDelta(t, 0, spec.Duration, 0)
		assert.True(t, spec.NeedsConfirmation)
	})

	t.Run("ignores a block without closing fence", func(t *testing.T) {
		spec := parseOne(t, "```lu0;0\nA\n```\n```lu0;1\nunterminated")

		require.Len(t, spec.Directives, 1)
		assert.Equal(t, "A", spec.Directives[0].Text)
	})
}

func TestParse(t *testing.T) {
	t.Run("splits sections", func(t *testing.T) {
		specs, err := parser.Parse("```lu0;0\nA\n```\n---\n1s ```lu0;0\nB\n```\n---\n")

		require.NoError(t, err)
		require.Len(t, specs, 3)
		assert.Equal(t, "A", specs[0].Directives[0].Text)
		assert.InDelta(t, 1, specs[1].Duration, 0)
		assert.Empty(t, specs[2].Directives)
	})

	t.Run("reports errors", func(t *testing.T) {
		cases := []struct {
			name   string
			source string
			err    error
		}{
			{"unknown corner", "```xx0;0\nA\n```", model.ErrUnknownCorner},
			{"unknown alignment", "```lux;0\nA\n```", model.ErrInvalidAlignmentToken},
			{"bad tilde index", "```lu~5;0\nA\n```", model.ErrInvalidAlignmentToken},
			{"bad number", "```lu1x;0\nA\n```", model.ErrMalformedDirective},
			{"empty coordinate", "```lu;0\nA\n```", model.ErrMalformedDirective},
			{"negative indent", "```lu0;0;-1\nA\n```", model.ErrMalformedDirective},
			{"too many fields", "```lu0;0;1;2\nA\n```", model.ErrMalformedDirective},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				specs, err := parser.Parse(c.source)

				require.ErrorIs(t, err, c.err)
				assert.Nil(t, specs)
			})
		}
	})

	t.Run("error names the slide", func(t *testing.T) {
		_, err := parser.Parse("```lu0;0\nA\n```\n---\n```zz0;0\nB\n```")

		require.ErrorIs(t, err, model.ErrUnknownCorner)
		assert.True(t, strings.HasPrefix(err.Error(), "slide 2:"), err.Error())
	})
}
