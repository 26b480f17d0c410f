package domain

import "errors"

var (
	ErrInvalidFrequency    = errors.New("invalid deposit frequency")
	ErrUnknownCommunity    = errors.New("unknown autonomous community")
	ErrInvalidMortgageType = errors.New("invalid mortgage type")
	ErrInvalidFlag         = errors.New("invalid Y/N flag")
	ErrMissingField        = errors.New("missing required field")
	ErrOutOfRange          = errors.New("value out of range")
)
