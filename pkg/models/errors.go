package models

import (
	"errors"
	"fmt"
)

// ErrNoResults signals that a ResultSet is empty and no statistics can be
// derived from it. A valid outcome, not a failure.
var ErrNoResults = errors.New("no results to analyze")

var ErrExtractorUnavailable = errors.New("extractor unavailable")

type ExtractorUnavailableError struct {
	ServerURL string
	Cause     error
}

func (e *ExtractorUnavailableError) Error() string {
	return fmt.Sprintf("entity extraction service at %s is unavailable: %v", e.ServerURL, e.Cause)
}

func (e *ExtractorUnavailableError) Unwrap() error {
	return ErrExtractorUnavailable
}

func NewExtractorUnavailableError(serverURL string, cause error) error {
	return &ExtractorUnavailableError{ServerURL: serverURL, Cause: cause}
}
