package driven

import "context"

// LineReader reads a text source fully into memory, one entry per line.
type LineReader interface {
	// ReadLines returns every line of the file at path, without line terminators.
	// Returns domain.ErrFileNotFound or domain.ErrNotRegularFile (wrapped with
	// the path) when the path cannot be used as input.
	ReadLines(ctx context.Context, path string) ([]string, error)
}
