package epitope

import "strings"

// DefaultMaxInputBytes caps raw input size when no explicit limit is
// configured.
const DefaultMaxInputBytes = 10_000_000

// Limits carries parser limits. The zero value applies the defaults.
type Limits struct {
	// MaxInputBytes rejects raw input longer than this many bytes before any
	// splitting happens. Values <= 0 fall back to DefaultMaxInputBytes.
	MaxInputBytes int
}

// Max reports the effective input size limit in bytes.
func (l Limits) Max() int {
	if l.MaxInputBytes > 0 {
		return l.MaxInputBytes
	}
	return DefaultMaxInputBytes
}

// Parse extracts validated epitopes from text using the default limits.
func Parse(text string) ([]string, error) {
	return Limits{}.Parse(text)
}

// Parse extracts validated epitopes from text.
//
// The whole input is split on commas when any comma is present, otherwise on
// line breaks; pieces are trimmed and empty pieces dropped. It returns the
// accepted epitopes in encounter order, or:
//   - *TooLargeError when the raw text exceeds the size limit,
//   - *InvalidSequenceError when any token fails validation (no epitopes are
//     returned alongside it),
//   - ErrEmptyInput when nothing but whitespace or separators was supplied.
func (l Limits) Parse(text string) ([]string, error) {
	if limit := l.Max(); len(text) > limit {
		return nil, &TooLargeError{Size: len(text), Limit: limit}
	}

	var pieces []string
	if strings.Contains(text, ",") {
		pieces = strings.Split(text, ",")
	} else {
		pieces = strings.Split(text, "\n")
	}

	var epitopes []string
	var invalid []string
	for _, piece := range pieces {
		token := strings.TrimSpace(piece)
		if token == "" {
			continue
		}
		if ValidToken(token) {
			epitopes = append(epitopes, token)
		} else {
			invalid = append(invalid, token)
		}
	}

	if len(invalid) > 0 {
		return nil, &InvalidSequenceError{Tokens: invalid}
	}
	if len(epitopes) == 0 {
		return nil, ErrEmptyInput
	}
	return epitopes, nil
}
