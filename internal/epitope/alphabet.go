package epitope

import (
	"strings"
	"unicode"
)

// Letters is the fixed set of single-character amino-acid codes accepted in
// epitope sequences.
const Letters = "ACDEFGHIKLMNPQRSTVWY"

var residues = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(Letters))
	for _, r := range Letters {
		set[r] = struct{}{}
	}
	return set
}()

// ValidResidue reports whether r is an amino-acid code, folding case so both
// 'a' and 'A' are accepted.
func ValidResidue(r rune) bool {
	_, ok := residues[unicode.ToUpper(r)]
	return ok
}

// ValidToken reports whether every character of token is an amino-acid code.
// The empty string is not a valid token.
func ValidToken(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !ValidResidue(r) {
			return false
		}
	}
	return true
}

// AlphabetList returns the alphabet as a comma-separated list ("A, C, D, ...")
// for user-facing messages.
func AlphabetList() string {
	parts := make([]string, 0, len(Letters))
	for _, r := range Letters {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ", ")
}
