package convert

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// readFileUTF8 reads the whole file and rejects content that is not valid
// UTF-8. A byte-order mark is kept as part of the text and will fail alphabet
// validation downstream rather than being silently stripped.
func readFileUTF8(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "", &ReadError{Kind: ReadNotFound, Path: path, Err: err}
		case errors.Is(err, fs.ErrPermission):
			return "", &ReadError{Kind: ReadPermissionDenied, Path: path, Err: err}
		default:
			return "", &ReadError{Path: path, Err: err}
		}
	}
	defer file.Close()

	data, err := io.ReadAll(transform.NewReader(file, encoding.UTF8Validator))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", &ReadError{Kind: ReadDecode, Path: path, Err: err}
		}
		return "", &ReadError{Path: path, Err: err}
	}
	return string(data), nil
}
