package port

import "context"

// SourceFile is the text of a file the user picked.
type SourceFile struct {
	Name string
	Text string
}

// FileSource abstracts how a capture file is chosen and read.
type FileSource interface {
	Fetch(ctx context.Context) (*SourceFile, error)
}
