// Package yamlline decodes customer records written as one YAML flow
// mapping per line. JSON lines are valid YAML and decode too.
package yamlline

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driven"
	"github.com/custodia-labs/nearby/internal/decoders/wire"
)

// Ensure Decoder implements the interface.
var _ driven.RecordDecoder = (*Decoder)(nil)

// errNotMapping is returned when a line holds a scalar or a sequence.
var errNotMapping = errors.New("line is not a mapping")

// Decoder parses YAML lines.
type Decoder struct{}

// New creates a new YAML line decoder.
func New() *Decoder {
	return &Decoder{}
}

// Format returns domain.FormatYAML.
func (d *Decoder) Format() domain.InputFormat {
	return domain.FormatYAML
}

// Decode parses one mapping. A null document decodes as a record with
// every field absent.
func (d *Decoder) Decode(line string) (domain.CustomerRecord, error) {
	if wire.IsBlank(line) {
		return domain.CustomerRecord{}, domain.ErrNoContent
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(line), &doc); err != nil {
		return domain.CustomerRecord{}, fmt.Errorf("decode yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return domain.CustomerRecord{}, domain.ErrNoContent
	}

	root := doc.Content[0]
	switch {
	case root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null":
		return domain.CustomerRecord{}, nil
	case root.Kind != yaml.MappingNode:
		return domain.CustomerRecord{}, fmt.Errorf("decode yaml: %w", errNotMapping)
	}

	var rec struct {
		UserID    *scalar `yaml:"user_id"`
		Name      *scalar `yaml:"name"`
		Latitude  *scalar `yaml:"latitude"`
		Longitude *scalar `yaml:"longitude"`
	}
	if err := root.Decode(&rec); err != nil {
		return domain.CustomerRecord{}, fmt.Errorf("decode yaml: %w", err)
	}

	return wire.Fields{
		UserID:    rec.UserID.text(),
		Name:      rec.Name.text(),
		Latitude:  rec.Latitude.text(),
		Longitude: rec.Longitude.text(),
	}.Record()
}

// scalar holds the literal text of a YAML scalar, quoted or not.
type scalar string

// UnmarshalYAML rejects mappings and sequences.
func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	*s = scalar(node.Value)
	return nil
}

func (s *scalar) text() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
