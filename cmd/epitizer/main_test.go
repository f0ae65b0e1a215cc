package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvertTextToFile(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := filepath.Join(env.baseDir, "out.fasta")

	out, _, err := runCLI(t, []string{"convert", "--text", "ACD\nEFG", "--output", dest}, env.configPath, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Successfully converted 2 epitopes to FASTA!")
	requireContains(t, out, "Saved to: out.fasta")

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != ">seq1\nACD\n>seq2\nEFG\n" {
		t.Fatalf("output = %q", content)
	}
}

func TestConvertCommaSeparatedInput(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := filepath.Join(env.baseDir, "out.fasta")

	out, _, err := runCLI(t, []string{"convert", "--text", "ACD,EFG,HIK", "--output", dest}, env.configPath, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Successfully converted 3 epitopes to FASTA!")
}

func TestConvertRemoveDuplicatesFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := filepath.Join(env.baseDir, "out.fasta")

	out, _, err := runCLI(t, []string{"convert", "--text", "ACD\nEFG\nACD", "--remove-duplicates", "--output", dest}, env.configPath, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Successfully converted 2 epitopes to FASTA!")
	requireContains(t, out, "(1 duplicates removed)")

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(content) != ">seq1\nACD\n>seq2\nEFG\n" {
		t.Fatalf("output = %q", content)
	}
}

func TestConvertRemoveDuplicatesFromConfigDefault(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestConfig(t, env.configPath, testConfigValues{logDir: env.logDir, removeDuplicates: true})
	dest := filepath.Join(env.baseDir, "out.fasta")

	out, _, err := runCLI(t, []string{"convert", "--text", "ACD\nACD", "--output", dest}, env.configPath, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Successfully converted 1 epitopes to FASTA!")
	requireContains(t, out, "(1 duplicates removed)")
}

func TestConvertInvalidSequences(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := filepath.Join(env.baseDir, "out.fasta")

	_, errOut, err := runCLI(t, []string{"convert", "--text", "ACD\nxyz1\nEFG", "--output", dest}, env.configPath, "")
	if err == nil {
		t.Fatal("expected failure for invalid input")
	}
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	requireContains(t, errOut, "Invalid epitope sequence(s) detected")
	requireContains(t, errOut, "xyz1")
	requireContains(t, errOut, "Epitopes must contain only valid amino acid letters:")
	requireContains(t, errOut, "A, C, D, E, F, G, H, I, K, L, M, N, P, Q, R, S, T, V, W, Y")

	if _, statErr := os.Stat(dest); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no output file, stat err = %v", statErr)
	}
}

func TestConvertInvalidSequencesTruncatesReport(t *testing.T) {
	env := setupCLITestEnv(t)

	_, errOut, err := runCLI(t, []string{"convert", "--text", "bad1\nbad2\nbad3\nbad4\nbad5\nbad6\nbad7", "--output", filepath.Join(env.baseDir, "out.fasta")}, env.configPath, "")
	if err == nil {
		t.Fatal("expected failure for invalid input")
	}
	requireContains(t, errOut, "bad5")
	requireContains(t, errOut, "...and 2 more")
	if strings.Contains(errOut, "bad6") {
		t.Fatalf("expected report truncated after 5 tokens, got %q", errOut)
	}
}

func TestConvertBlankText(t *testing.T) {
	env := setupCLITestEnv(t)

	_, errOut, err := runCLI(t, []string{"convert", "--text", "   ", "--output", filepath.Join(env.baseDir, "out.fasta")}, env.configPath, "")
	if err == nil {
		t.Fatal("expected failure for blank input")
	}
	requireContains(t, errOut, "Please enter epitope sequences!")
}

func TestConvertStdinSource(t *testing.T) {
	env := setupCLITestEnv(t)
	dest := filepath.Join(env.baseDir, "out.fasta")

	out, _, err := runCLI(t, []string{"convert", "--output", dest}, env.configPath, "ACD\nEFG\n")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Successfully converted 2 epitopes to FASTA!")
}

func TestConvertWhitespaceStdinReportsNoEpitopes(t *testing.T) {
	env := setupCLITestEnv(t)

	_, errOut, err := runCLI(t, []string{"convert", "--output", filepath.Join(env.baseDir, "out.fasta")}, env.configPath, "\n  \n")
	if err == nil {
		t.Fatal("expected failure for whitespace input")
	}
	requireContains(t, errOut, "No valid epitopes found!")
}

func TestConvertWithoutOutputIsCancelled(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"convert", "--text", "ACD"}, env.configPath, "")
	if err != nil {
		t.Fatalf("cancelled conversion must not error, got %v", err)
	}
	requireContains(t, out, "Conversion cancelled")
}

func TestConvertFileInput(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "epitopes.txt")
	if err := os.WriteFile(input, []byte("ACD\nEFG\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	dest := filepath.Join(env.baseDir, "out.fasta")

	out, _, err := runCLI(t, []string{"convert", "--file", input, "--output", dest}, env.configPath, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "File selected: epitopes.txt")
	requireContains(t, out, "Successfully converted 2 epitopes to FASTA!")
}

func TestConvertFileNotFound(t *testing.T) {
	env := setupCLITestEnv(t)

	_, errOut, err := runCLI(t, []string{"convert", "--file", filepath.Join(env.baseDir, "missing.txt"), "--output", filepath.Join(env.baseDir, "out.fasta")}, env.configPath, "")
	if err == nil {
		t.Fatal("expected failure for missing file")
	}
	requireContains(t, errOut, "File not found")
}

func TestConvertRejectsNonUTF8File(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "latin1.txt")
	if err := os.WriteFile(input, []byte{'A', 'C', 0xe9}, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	_, errOut, err := runCLI(t, []string{"convert", "--file", input, "--output", filepath.Join(env.baseDir, "out.fasta")}, env.configPath, "")
	if err == nil {
		t.Fatal("expected failure for non-UTF-8 file")
	}
	requireContains(t, errOut, "File encoding not supported. Please use UTF-8")
}

func TestConvertTooLargeInput(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestConfig(t, env.configPath, testConfigValues{logDir: env.logDir, maxInputBytes: 8})

	_, errOut, err := runCLI(t, []string{"convert", "--text", "ACDEFGHIK", "--output", filepath.Join(env.baseDir, "out.fasta")}, env.configPath, "")
	if err == nil {
		t.Fatal("expected failure for oversize input")
	}
	requireContains(t, errOut, "Input size too large. Maximum size is 8 B")
}

func TestValidateCountsEpitopes(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"validate", "--text", "ACD,EFG,HIK"}, env.configPath, "")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	requireContains(t, out, "Found 3 valid epitope(s)")
}

func TestValidateReportsInvalidTokens(t *testing.T) {
	env := setupCLITestEnv(t)

	_, errOut, err := runCLI(t, []string{"validate", "--text", "ACD, xyz1, EFG"}, env.configPath, "")
	if err == nil {
		t.Fatal("expected failure for invalid input")
	}
	requireContains(t, errOut, "xyz1")
}

func TestValidateFastaInspection(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.baseDir, "existing.fasta")
	if err := os.WriteFile(path, []byte(">seq1\nACD\n>seq2\nEFGHIK\n"), 0o644); err != nil {
		t.Fatalf("write FASTA: %v", err)
	}

	out, _, err := runCLI(t, []string{"validate", "--fasta", path}, env.configPath, "")
	if err != nil {
		t.Fatalf("validate --fasta: %v", err)
	}
	requireContains(t, out, "existing.fasta contains 2 record(s)")
	requireContains(t, out, "seq1")
	requireContains(t, out, "6")
}
