package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// checkDestination verifies that the destination's parent directory exists and
// accepts writes before any file is created.
func checkDestination(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &WriteError{Kind: WriteOther, Path: path, Err: fmt.Errorf("directory %s does not exist", dir)}
		}
		return &WriteError{Kind: WriteOther, Path: path, Err: err}
	}
	if !info.IsDir() {
		return &WriteError{Kind: WriteOther, Path: path, Err: fmt.Errorf("%s is not a directory", dir)}
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return &WriteError{Kind: WritePermissionDenied, Path: path, Err: err}
	}
	return nil
}
