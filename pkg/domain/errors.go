package domain

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is returned when a payload exceeds the configured size limit.
var ErrPayloadTooLarge = errors.New("payload exceeds maximum allowed size")

// ErrInvalidTable is the failure of a table value without a rows sequence.
var ErrInvalidTable = errors.New("Invalid table data")

// UnsupportedTypeError is returned by the parser for a tag it does not recognize.
type UnsupportedTypeError struct {
	Type MIMEType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported MIME type: %s", e.Type)
}

// MalformedJSONError is returned when a JSON-bearing payload fails to parse.
type MalformedJSONError struct {
	Type MIMEType
	Err  error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in %s payload: %v", e.Type, e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}
