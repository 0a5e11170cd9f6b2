// Package filesystem reads input files from the local disk.
package filesystem

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driven"
	"github.com/custodia-labs/nearby/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.LineReader = (*Reader)(nil)

// maxLineSize bounds a single input line.
const maxLineSize = 16 * 1024 * 1024

// Reader loads whole files as lines.
type Reader struct{}

// New creates a new filesystem line reader.
func New() *Reader {
	return &Reader{}
}

// ReadLines returns every line of the file, with "\n" or "\r\n" stripped.
func (r *Reader) ReadLines(ctx context.Context, location string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := ResolvePath(location)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, location)
		}
		return nil, fmt.Errorf("stat input file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRegularFile, location)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	logger.Debug("Read %d lines from %s (%d bytes)", len(lines), path, info.Size())
	return lines, nil
}
