package fasta_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"epitizer/internal/fasta"
)

func TestTextRendersSequentialRecords(t *testing.T) {
	got := fasta.Text([]string{"AC", "DE"})
	want := ">seq1\nAC\n>seq2\nDE\n"
	if got != want {
		t.Fatalf("Text mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestTextEmptyListProducesNoOutput(t *testing.T) {
	if got := fasta.Text(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestTextPreservesSequenceCase(t *testing.T) {
	got := fasta.Text([]string{"acDef"})
	if got != ">seq1\nacDef\n" {
		t.Fatalf("expected casing preserved, got %q", got)
	}
}

func TestRecordsAssignOneBasedHeaders(t *testing.T) {
	records := fasta.Records([]string{"ACD", "EFG", "HIK"})
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, rec := range records {
		wantHeader := fasta.HeaderPrefix + strconv.Itoa(i+1)
		if rec.Header != wantHeader {
			t.Fatalf("record %d header: got %q want %q", i, rec.Header, wantHeader)
		}
	}
}

func TestWriterMatchesText(t *testing.T) {
	epitopes := []string{"ACDEF", "GHIKL", "MNPQR"}
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf)
	if err := w.WriteAll(fasta.Records(epitopes)); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}
	if buf.String() != fasta.Text(epitopes) {
		t.Fatalf("writer output %q does not match Text output %q", buf.String(), fasta.Text(epitopes))
	}
}

func TestWriterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf)
	if err := w.Write(fasta.Record{Header: "seq1", Sequence: "ACD"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected buffered output before Flush, got %q", buf.String())
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	if buf.String() != ">seq1\nACD\n" {
		t.Fatalf("unexpected flushed output %q", buf.String())
	}
}

func TestRoundTripRecoversEpitopes(t *testing.T) {
	epitopes := []string{"ACDEF", "ghikl", "MNPQR", "ACDEF"}
	records, err := fasta.Parse(strings.NewReader(fasta.Text(epitopes)))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(records) != len(epitopes) {
		t.Fatalf("expected %d records, got %d", len(epitopes), len(records))
	}
	for i, rec := range records {
		if rec.Sequence != epitopes[i] {
			t.Fatalf("record %d sequence: got %q want %q", i, rec.Sequence, epitopes[i])
		}
	}
}

func TestParseConcatenatesWrappedSequences(t *testing.T) {
	input := ">first\nACD\nEFG\n>second\nHIK\n"
	records, err := fasta.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Header != "first" || records[0].Sequence != "ACDEFG" {
		t.Fatalf("unexpected first record %+v", records[0])
	}
	if records[1].Header != "second" || records[1].Sequence != "HIK" {
		t.Fatalf("unexpected second record %+v", records[1])
	}
}

func TestParseIgnoresLeadingNoise(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader("stray line\n>seq1\nACD\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(records) != 1 || records[0].Sequence != "ACD" {
		t.Fatalf("unexpected records %v", records)
	}
}

func TestParseEmptyInput(t *testing.T) {
	records, err := fasta.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %v", records)
	}
}
