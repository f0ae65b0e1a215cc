package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HeaderPrefix is the stem of generated record headers: >seq1, >seq2, ...
const HeaderPrefix = "seq"

// Record is a single FASTA entry: a header and one sequence.
type Record struct {
	Header   string
	Sequence string
}

// String renders the record as its two FASTA lines without a trailing
// newline.
func (r Record) String() string {
	return fmt.Sprintf(">%s\n%s", r.Header, r.Sequence)
}

// Records pairs each epitope with its sequential header, 1-based in the order
// given. Sequences are emitted exactly as supplied; casing is not touched.
func Records(epitopes []string) []Record {
	records := make([]Record, len(epitopes))
	for i, seq := range epitopes {
		records[i] = Record{
			Header:   HeaderPrefix + strconv.Itoa(i+1),
			Sequence: seq,
		}
	}
	return records
}

// Text serializes epitopes straight to FASTA text. Every record ends with a
// newline, the last included, and no blank lines separate records.
func Text(epitopes []string) string {
	var b strings.Builder
	for _, rec := range Records(epitopes) {
		b.WriteString(rec.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// A Writer writes FASTA records to an underlying io.Writer.
type Writer struct {
	buf *bufio.Writer
}

// NewWriter wraps w in a buffered FASTA writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Write buffers a single record. Call Flush, or use WriteAll, to push the
// buffered output to the underlying writer.
func (w *Writer) Write(rec Record) error {
	if _, err := w.buf.WriteString(rec.String()); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// WriteAll writes every record and flushes.
func (w *Writer) WriteAll(records []Record) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered records to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Parse reads FASTA records from r. Lines beginning with '>' open a new
// record; subsequent lines are concatenated into its sequence. Sequence data
// before the first header is ignored.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	var records []Record
	var current Record
	seenHeader := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if seenHeader {
				records = append(records, current)
			}
			current = Record{Header: strings.TrimSpace(line[1:])}
			seenHeader = true
			continue
		}
		if seenHeader {
			current.Sequence += line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if seenHeader {
		records = append(records, current)
	}
	return records, nil
}
