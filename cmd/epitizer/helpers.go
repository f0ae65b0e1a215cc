package main

import (
	"strings"

	"github.com/spf13/cobra"

	"epitizer/internal/config"
	"epitizer/internal/convert"
)

// resolveSource picks the input source from the flags, falling back to piped
// standard input. A nil source means nothing was provided; the converter
// reports that as its own outcome.
func resolveSource(cmd *cobra.Command, textFlag, fileFlag string) (convert.Source, error) {
	if cmd.Flags().Changed("text") {
		return convert.TextSource{Text: textFlag}, nil
	}
	if path := strings.TrimSpace(fileFlag); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		return convert.FileSource{Path: expanded}, nil
	}
	stdin := cmd.InOrStdin()
	if !isTerminal(stdin) {
		return convert.ReaderSource{Reader: stdin}, nil
	}
	return nil, nil
}
