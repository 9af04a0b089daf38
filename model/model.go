package model

import (
	"strconv"
	"strings"
	"time"
)

type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

type CoordKind int

const (
	// Absolute offset from the start edge.
	Absolute CoordKind = iota
	// FromFar is a negative offset from the far edge.
	FromFar
	Aligned
)

// Coordinate addresses one axis of the canvas.
type Coordinate struct {
	Kind   CoordKind
	Offset int
	Align  Alignment
}

func At(n int) Coordinate {
	if n < 0 {
		return Coordinate{Kind: FromFar, Offset: n}
	}

	return Coordinate{Kind: Absolute, Offset: n}
}

func Align(a Alignment) Coordinate {
	return Coordinate{Kind: Aligned, Align: a}
}

// Symbolic reports whether the coordinate is resolved from the block extent
// (CENTER or END) rather than from a literal offset.
func (c Coordinate) Symbolic() bool {
	return c.Kind == Aligned && c.Align != AlignStart
}

// Shift moves a literal coordinate by delta. Symbolic coordinates are returned
// unchanged. Like a literal from the source, a result below zero counts from
// the far edge.
func (c Coordinate) Shift(delta int) Coordinate {
	switch {
	case c.Symbolic():
		return c
	case c.Kind == Aligned:
		return At(delta)
	default:
		return At(c.Offset + delta)
	}
}

func (c Coordinate) String() string {
	return c.Token(false)
}

// Token writes the coordinate in source notation. Alignments use l/m/r on the
// horizontal axis and u/m/d on the vertical one.
func (c Coordinate) Token(vertical bool) string {
	if c.Kind != Aligned {
		return strconv.Itoa(c.Offset)
	}

	switch {
	case c.Align == AlignCenter:
		return "m"
	case c.Align == AlignEnd && vertical:
		return "d"
	case c.Align == AlignEnd:
		return "r"
	case vertical:
		return "u"
	default:
		return "l"
	}
}

func (c Coordinate) MarshalYAML() (any, error) {
	return c.String(), nil
}

type Position struct {
	X Coordinate `yaml:"x"`
	Y Coordinate `yaml:"y"`
}

func (p Position) MarshalYAML() (any, error) {
	return struct {
		X string `yaml:"x"`
		Y string `yaml:"y"`
	}{X: p.X.Token(false), Y: p.Y.Token(true)}, nil
}

type Corner int

const (
	LeftUp Corner = iota
	LeftDown
	RightUp
	RightDown
)

var cornerCodes = map[string]Corner{
	"lu": LeftUp,
	"ld": LeftDown,
	"ru": RightUp,
	"rd": RightDown,
}

func CornerFromCode(code string) (Corner, bool) {
	c, ok := cornerCodes[strings.ToLower(code)]

	return c, ok
}

func (c Corner) String() string {
	for code, corner := range cornerCodes {
		if corner == c {
			return code
		}
	}

	return "corner(" + strconv.Itoa(int(c)) + ")"
}

func (c Corner) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c Corner) AnchoredRight() bool {
	return c == RightUp || c == RightDown
}

func (c Corner) AnchoredBottom() bool {
	return c == LeftDown || c == RightDown
}

type PlacementDirective struct {
	Corner     Corner   `yaml:"corner"`
	Position   Position `yaml:"position"`
	Indent     int      `yaml:"indent"`
	Transition bool     `yaml:"transition"`
	Text       string   `yaml:"text"`
}

type SlideSpec struct {
	Directives        []PlacementDirective `yaml:"directives"`
	Duration          float64              `yaml:"duration"`
	NeedsConfirmation bool                 `yaml:"needs_confirmation"`
}

// Slide is a finalized canvas. Text always holds exactly one line per canvas row.
type Slide struct {
	Text              string
	Duration          float64
	NeedsConfirmation bool
}

func (s Slide) Wait() time.Duration {
	return time.Duration(s.Duration * float64(time.Second))
}

type Presentation struct {
	slides []Slide
}

func NewPresentation(slides []Slide) *Presentation {
	owned := make([]Slide, len(slides))
	copy(owned, slides)

	return &Presentation{slides: owned}
}

// Slides returns a copy of the slide list.
func (p *Presentation) Slides() []Slide {
	out := make([]Slide, len(p.slides))
	copy(out, p.slides)

	return out
}

func (p *Presentation) Len() int {
	return len(p.slides)
}
