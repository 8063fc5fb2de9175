package assistant

import "errors"

var (
	ErrEmptyQuestion     = errors.New("question is required")
	ErrGeneratorDisabled = errors.New("answer generator is not configured")
	ErrEmptyGeneration   = errors.New("answer generator returned no content")
)
