// Package epitope parses and validates epitope sequence input.
//
// Input is a single block of text holding one epitope per line or a
// comma-separated list. The separator decision covers the whole input: when
// any comma is present the entire text is split on commas, otherwise on line
// breaks. Pieces are trimmed and empty pieces dropped before validation, so
// trailing newlines and stray blank lines never count against the caller.
//
// Validation is all-or-nothing: a single token containing a character outside
// the 20-letter amino-acid alphabet rejects the whole input, and the returned
// error carries every offending token in encounter order. Accepted epitopes
// keep their original casing; the alphabet check folds case, so lowercase
// sequences are valid input.
//
// The package is pure string processing with no I/O; size limiting, file
// reading, and output writing live in internal/convert.
package epitope
