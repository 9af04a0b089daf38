package model

import "errors"

var (
	ErrInvalidAlignmentToken = errors.New("invalid alignment token")
	ErrUnknownCorner         = errors.New("unknown corner")
	ErrMalformedDirective    = errors.New("malformed directive")
)
