package driven

import "github.com/custodia-labs/nearby/internal/core/domain"

// RecordDecoder turns one input line into a customer record.
// Implementations are stateless and safe to reuse across lines.
type RecordDecoder interface {
	// Format returns the format this decoder handles.
	Format() domain.InputFormat

	// Decode parses a single line.
	// Returns domain.ErrNoContent for an empty or blank line.
	// Missing fields are left absent rather than reported.
	Decode(line string) (domain.CustomerRecord, error)
}

// DecoderRegistry selects a RecordDecoder by format name.
type DecoderRegistry interface {
	// Register adds a decoder, replacing any decoder for the same format.
	Register(decoder RecordDecoder)

	// Get returns the decoder for format.
	// Returns domain.ErrUnsupportedType if none is registered.
	Get(format domain.InputFormat) (RecordDecoder, error)

	// Formats returns the registered formats in sorted order.
	Formats() []domain.InputFormat
}
