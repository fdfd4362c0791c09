package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound               = errors.New("not found")
	ErrDictionaryNotFound     = errors.New("dictionary not found")
	ErrDictionaryFormat       = errors.New("malformed dictionary")
	ErrEmptyInput             = errors.New("empty input text")
	ErrMissingNumbersCategory = errors.New("dictionary has no NUMBERS category")
	ErrInvalidConfig          = errors.New("invalid configuration")
)
