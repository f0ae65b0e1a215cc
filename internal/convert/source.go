package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Source supplies the raw epitope text for a conversion. The description is a
// short human-readable label ("pasted text", a file basename) used in results
// and logs.
type Source interface {
	Read(ctx context.Context) (text string, description string, err error)
}

// TextSource carries epitope text supplied directly, e.g. via a flag.
type TextSource struct {
	Text string
}

func (s TextSource) Read(ctx context.Context) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if strings.TrimSpace(s.Text) == "" {
		return "", "", ErrNoText
	}
	return s.Text, "pasted text", nil
}

// FileSource reads epitope text from a file, rejecting content that is not
// valid UTF-8.
type FileSource struct {
	Path string
}

func (s FileSource) Read(ctx context.Context) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	text, err := readFileUTF8(s.Path)
	if err != nil {
		return "", "", err
	}
	return text, filepath.Base(s.Path), nil
}

// ReaderSource reads epitope text from a stream such as standard input.
type ReaderSource struct {
	Reader      io.Reader
	Description string
}

func (s ReaderSource) Read(ctx context.Context) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	desc := s.Description
	if desc == "" {
		desc = "standard input"
	}
	data, err := io.ReadAll(s.Reader)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", desc, err)
	}
	return string(data), desc, nil
}
