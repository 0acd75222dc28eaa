package ladder

import "errors"

var (
	ErrInvalidWord         = errors.New("word is not in the dictionary")
	ErrIncompatibleLengths = errors.New("start and end words have different lengths")
	ErrInvalidStrategy     = errors.New("invalid strategy")
	ErrInvalidPath         = errors.New("invalid ladder")
)
