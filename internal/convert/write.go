package convert

import (
	"errors"
	"io/fs"
	"os"

	"epitizer/internal/fasta"
)

// writeFASTA serializes the epitopes and writes them to path, overwriting any
// existing file.
func writeFASTA(path string, epitopes []string) error {
	file, err := os.Create(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return &WriteError{Kind: WritePermissionDenied, Path: path, Err: err}
		}
		return &WriteError{Kind: WriteOther, Path: path, Err: err}
	}

	writer := fasta.NewWriter(file)
	if err := writer.WriteAll(fasta.Records(epitopes)); err != nil {
		file.Close()
		return &WriteError{Kind: WriteOther, Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &WriteError{Kind: WriteOther, Path: path, Err: err}
	}
	return nil
}
