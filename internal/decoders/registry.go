package decoders

import (
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driven"
	"github.com/custodia-labs/nearby/internal/decoders/jsonline"
	"github.com/custodia-labs/nearby/internal/decoders/yamlline"
)

// Ensure Registry implements the interface.
var _ driven.DecoderRegistry = (*Registry)(nil)

// Registry maps input formats to their decoders.
type Registry struct {
	mu       sync.RWMutex
	decoders map[domain.InputFormat]driven.RecordDecoder
}

// NewRegistry creates a registry holding the given decoders.
func NewRegistry(decoders ...driven.RecordDecoder) *Registry {
	r := &Registry{
		decoders: make(map[domain.InputFormat]driven.RecordDecoder),
	}
	for _, d := range decoders {
		r.Register(d)
	}
	return r
}

// NewDefaultRegistry creates a registry with every built-in decoder.
func NewDefaultRegistry() *Registry {
	return NewRegistry(jsonline.New(), yamlline.New())
}

// Register adds a decoder, replacing any decoder for the same format.
func (r *Registry) Register(decoder driven.RecordDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[decoder.Format()] = decoder
}

// Get returns the decoder for format.
func (r *Registry) Get(format domain.InputFormat) (driven.RecordDecoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decoder, ok := r.decoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: input format %q", domain.ErrUnsupportedType, format)
	}
	return decoder, nil
}

// Formats returns the registered formats in sorted order.
func (r *Registry) Formats() []domain.InputFormat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]domain.InputFormat, 0, len(r.decoders))
	for f := range r.decoders {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}
