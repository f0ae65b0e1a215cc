package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"epitizer/internal/config"
	"epitizer/internal/fasta"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var textFlag string
	var fileFlag string
	var fastaFlag string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check epitope input without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			colorizeOut := shouldColorize(out) && !ctx.noColor()
			colorizeErr := shouldColorize(errOut) && !ctx.noColor()

			if strings.TrimSpace(fastaFlag) != "" {
				return runFastaInspection(cmd, fastaFlag)
			}

			source, err := resolveSource(cmd, textFlag, fileFlag)
			if err != nil {
				return err
			}

			converter, err := ctx.newConverter()
			if err != nil {
				return err
			}

			result, err := converter.Validate(cmd.Context(), source)
			if err != nil {
				renderFailure(errOut, err, colorizeErr)
				return errReported
			}

			fmt.Fprintln(out, paint(statusOK, fmt.Sprintf("Found %d valid epitope(s)", result.Count), colorizeOut))
			return nil
		},
	}

	cmd.Flags().StringVarP(&textFlag, "text", "t", "", "Epitope sequences separated by commas or newlines")
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read epitope sequences from a file")
	cmd.Flags().StringVar(&fastaFlag, "fasta", "", "Inspect an existing FASTA file instead")
	cmd.MarkFlagsMutuallyExclusive("text", "file", "fasta")

	return cmd
}

func runFastaInspection(cmd *cobra.Command, path string) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("resolve FASTA path: %w", err)
	}

	file, err := os.Open(expanded)
	if err != nil {
		return fmt.Errorf("open FASTA file: %w", err)
	}
	defer file.Close()

	records, err := fasta.Parse(file)
	if err != nil {
		return fmt.Errorf("parse FASTA file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s contains %d record(s)\n", filepath.Base(expanded), len(records))
	if len(records) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{record.Header, strconv.Itoa(len(record.Sequence))})
	}
	fmt.Fprintln(out, renderTable([]string{"Header", "Length"}, rows))
	return nil
}
