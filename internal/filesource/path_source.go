package filesource

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"trameview/internal/domain"
	"trameview/internal/port"
)

// PathSource reads a capture file from a local path. It implements
// port.FileSource.
type PathSource struct {
	path     string
	maxBytes int64
}

// NewPathSource creates a PathSource. maxBytes <= 0 disables the size check.
func NewPathSource(path string, maxBytes int64) *PathSource {
	return &PathSource{path: path, maxBytes: maxBytes}
}

func (s *PathSource) Fetch(ctx context.Context) (*port.SourceFile, error) {
	if s.path == "" {
		return nil, domain.ErrNoFileSelected
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if s.maxBytes > 0 {
		r = io.LimitReader(f, s.maxBytes+1)
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if s.maxBytes > 0 && int64(len(buf)) > s.maxBytes {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", s.path, domain.ErrFileTooLarge, s.maxBytes)
	}
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("%s: %w", s.path, domain.ErrNotUTF8)
	}

	return &port.SourceFile{Name: s.path, Text: string(buf)}, nil
}
