package epitope

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput marks input that held no epitopes at all after trimming:
	// blank text, whitespace, or bare separators. Distinct from
	// ErrInvalidSequence, which means content was present but rejected.
	ErrEmptyInput = errors.New("no epitopes found in input")

	// ErrInvalidSequence marks input rejected because at least one token
	// contained a character outside the amino-acid alphabet. Errors carrying
	// the offending tokens match this sentinel via errors.Is.
	ErrInvalidSequence = errors.New("invalid epitope sequence")

	// ErrTooLarge marks raw input that exceeded the configured size limit.
	// The check runs before any splitting or validation.
	ErrTooLarge = errors.New("input too large")
)

// InvalidSequenceError reports the tokens that failed alphabet validation, in
// encounter order. Presentation code decides how many to show; the error
// string itself stays short.
type InvalidSequenceError struct {
	Tokens []string
}

func (e *InvalidSequenceError) Error() string {
	switch len(e.Tokens) {
	case 0:
		return "invalid epitope sequence"
	case 1:
		return fmt.Sprintf("invalid epitope sequence %q", e.Tokens[0])
	default:
		return fmt.Sprintf("invalid epitope sequence %q and %d more", e.Tokens[0], len(e.Tokens)-1)
	}
}

func (e *InvalidSequenceError) Is(target error) bool {
	return target == ErrInvalidSequence
}

// TooLargeError reports input that exceeded the size limit in force.
type TooLargeError struct {
	Size  int
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("input is %d bytes; limit is %d bytes", e.Size, e.Limit)
}

func (e *TooLargeError) Is(target error) bool {
	return target == ErrTooLarge
}
