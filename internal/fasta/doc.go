// Package fasta renders epitope lists as FASTA text and reads simple FASTA
// records back.
//
// Output records use sequential headers (>seq1, >seq2, ...) with the sequence
// on a single unwrapped line and a trailing newline after every record,
// including the last. The reader is intentionally minimal: it pairs each
// '>' header with the concatenation of the sequence lines that follow it and
// makes no attempt at the wider family of FASTA header conventions.
package fasta
