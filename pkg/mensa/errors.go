package mensa

import (
	"errors"
	"fmt"
)

// Fatal error values. Check with errors.Is.
var (
	// ErrCanteenNotFound is returned when the document contains no
	// subtree for the requested canteen.
	ErrCanteenNotFound = errors.New("canteen not found in document")
)

// UnknownFlagError is returned by ResolveFlag for an abbreviation
// outside the registry. The parser degrades it to a warning; direct
// callers may treat it however they like.
type UnknownFlagError struct {
	Code string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag code: %q", e.Code)
}

// MalformedPriceError is returned by ParsePrice when the field holds
// text that is neither empty, a placeholder, nor currency-shaped.
type MalformedPriceError struct {
	Raw string
}

func (e *MalformedPriceError) Error() string {
	return fmt.Sprintf("malformed price: %q", e.Raw)
}
