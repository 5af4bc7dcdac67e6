package prediction

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned before any fetch when a value falls outside 0..9
// or a feedback outcome is unknown.
var ErrInvalidInput = errors.New("invalid input")

type FetchErrorKind string

const (
	FetchKindTransport FetchErrorKind = "transport"
	FetchKindHTTP      FetchErrorKind = "http"
	FetchKindDecode    FetchErrorKind = "decode"
	FetchKindCircuit   FetchErrorKind = "circuit"
	FetchKindUnknown   FetchErrorKind = "unknown"
)

// FetchError wraps any failure of the upstream signal source.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch signals (%s, status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch signals (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func asFetchError(err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{Kind: FetchKindUnknown, Err: err}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
