package layout

import (
	"fmt"
	"strings"

	"github.com/dasdy/termslides/model"
)

var letterAlignments = map[string]model.Alignment{
	"l": model.AlignStart,
	"u": model.AlignStart,
	"m": model.AlignCenter,
	"r": model.AlignEnd,
	"d": model.AlignEnd,
}

var tildeAlignments = map[byte]model.Alignment{
	'0': model.AlignStart,
	'1': model.AlignCenter,
	'2': model.AlignEnd,
}

// ResolveToken maps a direction letter (l, m, r, u, d) or a tilde index (~0, ~1, ~2)
// to an aligned coordinate. Letters are matched case-insensitively.
func ResolveToken(token string) (model.Coordinate, error) {
	if len(token) == 2 && token[0] == '~' {
		if a, ok := tildeAlignments[token[1]]; ok {
			return model.Align(a), nil
		}
	}

	if a, ok := letterAlignments[strings.ToLower(token)]; ok {
		return model.Align(a), nil
	}

	return model.Coordinate{}, fmt.Errorf("%w: %q", model.ErrInvalidAlignmentToken, token)
}
