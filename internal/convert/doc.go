// Package convert orchestrates the epitope-to-FASTA workflow: reading input
// from a source, validating it against the amino-acid alphabet, optionally
// removing duplicates, asking a destination chooser for an output path, and
// writing the FASTA file. Failures are classified so the presentation layer
// can render a distinct outcome per kind, and user cancellation is a benign
// no-op rather than an error.
package convert
