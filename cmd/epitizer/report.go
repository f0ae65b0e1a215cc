package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"

	"epitizer/internal/convert"
	"epitizer/internal/epitope"
)

// maxInvalidShown caps how many offending sequences the invalid-input report
// lists before collapsing the rest into a count.
const maxInvalidShown = 5

func renderConvertSuccess(out io.Writer, result *convert.Result, colorize bool) {
	fmt.Fprintln(out, paint(statusOK, fmt.Sprintf("Successfully converted %d epitopes to FASTA!", result.Count), colorize))
	if result.DuplicatesRemoved > 0 {
		fmt.Fprintf(out, "(%d duplicates removed)\n", result.DuplicatesRemoved)
	}
	fmt.Fprintf(out, "Saved to: %s\n", filepath.Base(result.Destination))
}

// renderFailure prints one distinct outcome per failure kind, mirroring the
// wording users see for each category.
func renderFailure(out io.Writer, err error, colorize bool) {
	var invalidErr *epitope.InvalidSequenceError
	var tooLargeErr *epitope.TooLargeError
	var readErr *convert.ReadError
	var writeErr *convert.WriteError

	switch {
	case errors.As(err, &invalidErr):
		renderInvalidReport(out, invalidErr, colorize)
	case errors.Is(err, convert.ErrNoText):
		fmt.Fprintln(out, paint(statusWarn, "Please enter epitope sequences!", colorize))
	case errors.Is(err, epitope.ErrEmptyInput):
		fmt.Fprintln(out, paint(statusWarn, "No valid epitopes found!", colorize))
	case errors.As(err, &tooLargeErr):
		message := fmt.Sprintf("Input size too large. Maximum size is %s", humanize.Bytes(uint64(tooLargeErr.Limit)))
		fmt.Fprintln(out, paint(statusWarn, message, colorize))
	case errors.As(err, &readErr):
		fmt.Fprintln(out, paint(statusError, readFailureMessage(readErr), colorize))
	case errors.As(err, &writeErr):
		fmt.Fprintln(out, paint(statusError, writeFailureMessage(writeErr), colorize))
	case errors.Is(err, convert.ErrBusy):
		fmt.Fprintln(out, paint(statusError, "Another conversion is already running", colorize))
	case errors.Is(err, convert.ErrSourceNotSelected):
		fmt.Fprintln(out, paint(statusWarn, "Please provide epitope sequences with --text, --file, or piped standard input", colorize))
	default:
		fmt.Fprintln(out, paint(statusError, fmt.Sprintf("An unexpected error occurred: %v", err), colorize))
	}
}

func renderInvalidReport(out io.Writer, invalidErr *epitope.InvalidSequenceError, colorize bool) {
	fmt.Fprintln(out, paint(statusError, "Invalid epitope sequence(s) detected", colorize))

	shown := invalidErr.Tokens
	if len(shown) > maxInvalidShown {
		shown = shown[:maxInvalidShown]
	}
	rows := make([][]string, 0, len(shown))
	for i, token := range shown {
		rows = append(rows, []string{strconv.Itoa(i + 1), token})
	}
	fmt.Fprintln(out, renderTable([]string{"#", "Sequence"}, rows))

	if extra := len(invalidErr.Tokens) - len(shown); extra > 0 {
		fmt.Fprintf(out, "...and %d more\n", extra)
	}
	fmt.Fprintln(out, "Epitopes must contain only valid amino acid letters:")
	fmt.Fprintln(out, epitope.AlphabetList())
}

func readFailureMessage(readErr *convert.ReadError) string {
	switch readErr.Kind {
	case convert.ReadNotFound:
		return "File not found"
	case convert.ReadPermissionDenied:
		return "Permission denied to read file"
	case convert.ReadDecode:
		return "File encoding not supported. Please use UTF-8"
	default:
		return fmt.Sprintf("Failed to read file: %v", readErr.Err)
	}
}

func writeFailureMessage(writeErr *convert.WriteError) string {
	if writeErr.Kind == convert.WritePermissionDenied {
		return "Permission denied to write file"
	}
	return fmt.Sprintf("Failed to write file: %v", writeErr.Err)
}
