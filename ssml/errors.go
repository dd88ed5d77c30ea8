package ssml

import "errors"

// The engine itself is total: every stage returns a valid result for any
// input. Only configuration can fail, at construction time.
var (
	ErrInvalidConfig      = errors.New("invalid engine configuration")
	ErrInvalidPause       = errors.New("pause duration must be positive")
	ErrInvalidLanguageTag = errors.New("invalid BCP-47 language tag")
	ErrEmptyTerm          = errors.New("pronunciation entry has an empty term")
)
