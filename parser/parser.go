package parser

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/dasdy/termslides/layout"
	"github.com/dasdy/termslides/logging"
	"github.com/dasdy/termslides/model"
)

const (
	sectionSeparator = "---"
	fence            = "```"
)

var logCtx = logging.PackageCtx("parser")

// Longest first, so that "seconds" is not read as "second" plus "s".
var durationUnits = []string{"seconds", "sec", "s"}

type header struct {
	corner   model.Corner
	position model.Position
	indent   int
	duration float64
}

// Parse splits source into slide sections and scans every section for placement
// blocks. Text outside of blocks is ignored. Any malformed block aborts the parse.
func Parse(source string) ([]model.SlideSpec, error) {
	sections := strings.Split(source, sectionSeparator)
	specs := make([]model.SlideSpec, 0, len(sections))

	for i, section := range sections {
		spec, err := ParseSection(section)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}

		slog.DebugContext(logCtx, "parsed slide",
			"index", i,
			"blocks", len(spec.Directives),
			"duration", spec.Duration)

		specs = append(specs, spec)
	}

	return specs, nil
}

// ParseSection scans a single slide section. The first block decides the
// duration of the slide; a slide without blocks waits for confirmation.
func ParseSection(section string) (model.SlideSpec, error) {
	spec := model.SlideSpec{NeedsConfirmation: true}
	lines := strings.Split(section, "\n")

	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	floor := 0
	ix := 0

	for ix < len(lines) {
		h, ok, err := parseHeader(lines, ix, floor)
		if err != nil {
			return model.SlideSpec{}, fmt.Errorf("line %d: %w", ix+1, err)
		}

		if !ok {
			ix++

			continue
		}

		end := closingFence(lines, ix+1)
		if end < 0 {
			slog.WarnContext(logCtx, "ignoring block without closing fence", "line", ix+1)

			break
		}

		d := model.PlacementDirective{
			Corner:     h.corner,
			Position:   h.position,
			Indent:     h.indent,
			Transition: strings.HasPrefix(lines[end][len(fence):], "+"),
			Text:       strings.Join(lines[ix+1:end], "\n"),
		}

		if len(spec.Directives) == 0 {
			spec.Duration = h.duration
			spec.NeedsConfirmation = h.duration == 0
		}

		spec.Directives = append(spec.Directives, d)

		ix = end + 1
		floor = ix
	}

	return spec, nil
}

func closingFence(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], fence) {
			return i
		}
	}

	return -1
}

// parseHeader recognizes an opening fence on lines[ix]. The duration is read
// from the text between the previous block (floor) and the fence.
func parseHeader(lines []string, ix, floor int) (header, bool, error) {
	line := lines[ix]

	start, found := findOpeningFence(line)
	if !found {
		return header{}, false, nil
	}

	h, err := parseFenceHeader(line[start+len(fence):])
	if err != nil {
		return header{}, true, err
	}

	before := strings.Join(append(lines[floor:ix:ix], line[:start]), "\n")
	h.duration = durationBefore(before)

	return h, true, nil
}

// findOpeningFence returns the offset of the first fence in line that is
// followed by a two letter corner code and a coordinate list.
func findOpeningFence(line string) (int, bool) {
	offset := 0

	for {
		i := strings.Index(line[offset:], fence)
		if i < 0 {
			return 0, false
		}

		start := offset + i
		rest := line[start+len(fence):]

		if len(rest) > 2 && isASCIILetter(rest[0]) && isASCIILetter(rest[1]) && strings.Contains(rest, ";") {
			return start, true
		}

		offset = start + len(fence)
	}
}

func parseFenceHeader(rest string) (header, error) {
	corner, ok := model.CornerFromCode(rest[:2])
	if !ok {
		return header{}, fmt.Errorf("%w: %q", model.ErrUnknownCorner, rest[:2])
	}

	fields := strings.Split(strings.TrimSpace(rest[2:]), ";")
	if len(fields) == 3 && strings.TrimSpace(fields[2]) == "" {
		fields = fields[:2]
	}

	if len(fields) != 2 && len(fields) != 3 {
		return header{}, fmt.Errorf("%w: expected x;y[;indent], got %q", model.ErrMalformedDirective, rest[2:])
	}

	x, err := parseCoordinate(fields[0])
	if err != nil {
		return header{}, fmt.Errorf("could not parse x: %w", err)
	}

	y, err := parseCoordinate(fields[1])
	if err != nil {
		return header{}, fmt.Errorf("could not parse y: %w", err)
	}

	h := header{corner: corner, position: model.Position{X: x, Y: y}}

	if len(fields) == 3 {
		h.indent, err = strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil || h.indent < 0 {
			return header{}, fmt.Errorf("%w: indent %q", model.ErrMalformedDirective, fields[2])
		}
	}

	return h, nil
}

func parseCoordinate(token string) (model.Coordinate, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.Coordinate{}, fmt.Errorf("%w: empty coordinate", model.ErrMalformedDirective)
	}

	if token[0] == '~' || isASCIILetter(token[0]) {
		//nolint:wrapcheck
		return layout.ResolveToken(token)
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("%w: coordinate %q", model.ErrMalformedDirective, token)
	}

	return model.At(n), nil
}

// durationBefore reads a number with an optional unit (s, sec, seconds) that
// ends text, ignoring trailing whitespace and newlines. The decimal separator is
// '.' or ','. Without such a number the duration is 0.
func durationBefore(text string) float64 {
	text = strings.TrimRightFunc(text, unicode.IsSpace)

	for _, unit := range durationUnits {
		if strings.HasSuffix(text, unit) {
			text = strings.TrimRightFunc(strings.TrimSuffix(text, unit), unicode.IsSpace)

			break
		}
	}

	number := trailingNumber(text)
	if number == "" {
		return 0
	}

	d, err := strconv.ParseFloat(strings.Replace(number, ",", ".", 1), 64)
	if err != nil {
		slog.WarnContext(logCtx, "ignoring unreadable duration", "duration", number, "error", err)

		return 0
	}

	return d
}

// trailingNumber returns the longest suffix of text shaped like 12, 12. or 1,5.
func trailingNumber(text string) string {
	end := len(text)
	i := end

	for i > 0 && isDigit(text[i-1]) {
		i--
	}

	if i > 0 && (text[i-1] == '.' || text[i-1] == ',') && i > 1 && isDigit(text[i-2]) {
		i--
		for i > 0 && isDigit(text[i-1]) {
			i--
		}
	}

	return text[i:end]
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
