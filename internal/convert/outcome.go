package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotSelected reports a conversion request without an input source.
	ErrSourceNotSelected = errors.New("no input source selected")
	// ErrNoText reports a text source whose content is blank.
	ErrNoText = errors.New("no epitope text entered")
	// ErrBusy reports that another conversion already holds the lock.
	ErrBusy = errors.New("another conversion is already running")
)

// ReadKind classifies why reading an input source failed.
type ReadKind string

const (
	ReadNotFound         ReadKind = "not_found"
	ReadPermissionDenied ReadKind = "permission_denied"
	ReadDecode           ReadKind = "decode"
)

// ReadError describes a classified input read failure.
type ReadError struct {
	Kind ReadKind
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	switch e.Kind {
	case ReadNotFound:
		return fmt.Sprintf("input file %s not found", e.Path)
	case ReadPermissionDenied:
		return fmt.Sprintf("permission denied reading %s", e.Path)
	case ReadDecode:
		return fmt.Sprintf("input file %s is not valid UTF-8", e.Path)
	default:
		return fmt.Sprintf("read %s: %v", e.Path, e.Err)
	}
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteKind classifies why writing the output file failed.
type WriteKind string

const (
	WritePermissionDenied WriteKind = "permission_denied"
	WriteOther            WriteKind = "other"
)

// WriteError describes a classified output write failure.
type WriteError struct {
	Kind WriteKind
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Kind == WritePermissionDenied {
		return fmt.Sprintf("permission denied writing %s", e.Path)
	}
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Result reports the outcome of a conversion or validation request.
type Result struct {
	State             State
	Count             int
	DuplicatesRemoved int
	Cancelled         bool
	Destination       string
	SourceDescription string
}
