package utils

import "errors"

// Failure kinds surfaced to the user. Handlers map each to a single JSON
// error response; nothing is retried.
var (
	ErrParseFailure      = errors.New("could not parse the uploaded document")
	ErrExtractionFailure = errors.New("document extraction returned no usable data")
	ErrPersistence       = errors.New("persistence operation failed")
	ErrValidation        = errors.New("validation failed")
)
