package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"epitizer/internal/config"
	"epitizer/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var textFlag string
	var fileFlag string
	var outputFlag string
	var removeDuplicates bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert epitope sequences to a FASTA file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			colorizeOut := shouldColorize(out) && !ctx.noColor()
			colorizeErr := shouldColorize(errOut) && !ctx.noColor()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("remove-duplicates") {
				removeDuplicates = cfg.Output.RemoveDuplicates
			}

			source, err := resolveSource(cmd, textFlag, fileFlag)
			if err != nil {
				return err
			}
			if path := strings.TrimSpace(fileFlag); path != "" {
				fmt.Fprintf(out, "File selected: %s\n", filepath.Base(path))
			}

			chooser, err := resolveChooser(cmd, outputFlag)
			if err != nil {
				return err
			}

			converter, err := ctx.newConverter()
			if err != nil {
				return err
			}

			result, err := converter.Convert(cmd.Context(), convert.Request{
				Source:           source,
				Chooser:          chooser,
				RemoveDuplicates: removeDuplicates,
			})
			if err != nil {
				renderFailure(errOut, err, colorizeErr)
				return errReported
			}
			if result.Cancelled {
				fmt.Fprintln(out, paint(statusWarn, "Conversion cancelled", colorizeOut))
				return nil
			}

			renderConvertSuccess(out, result, colorizeOut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&textFlag, "text", "t", "", "Epitope sequences separated by commas or newlines")
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read epitope sequences from a file")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination FASTA file")
	cmd.Flags().BoolVar(&removeDuplicates, "remove-duplicates", false, "Remove duplicate epitopes before writing")
	cmd.MarkFlagsMutuallyExclusive("text", "file")

	return cmd
}

// resolveChooser picks the destination strategy: an explicit --output path, an
// interactive prompt when both stdin and stdout are terminals, or nothing,
// which the converter treats as cancellation.
func resolveChooser(cmd *cobra.Command, outputFlag string) (convert.DestinationChooser, error) {
	if path := strings.TrimSpace(outputFlag); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		return convert.StaticChooser{Path: expanded}, nil
	}
	if isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
		return promptChooser{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}, nil
	}
	return nil, nil
}

// promptChooser asks the user for an output path on the terminal. A blank
// answer cancels the conversion.
type promptChooser struct {
	in  io.Reader
	out io.Writer
}

func (c promptChooser) Choose(ctx context.Context, suggested string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	fmt.Fprintf(c.out, "Output file (e.g. %s; blank cancels): ", suggested)

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", false, nil
	}
	expanded, err := config.ExpandPath(answer)
	if err != nil {
		return "", false, err
	}
	return expanded, true, nil
}
