// Package jsonline decodes customer records written as one JSON object per line.
package jsonline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/nearby/internal/core/domain"
	"github.com/custodia-labs/nearby/internal/core/ports/driven"
	"github.com/custodia-labs/nearby/internal/decoders/wire"
)

// Ensure Decoder implements the interface.
var _ driven.RecordDecoder = (*Decoder)(nil)

// Decoder parses JSON lines.
type Decoder struct{}

// New creates a new JSON line decoder.
func New() *Decoder {
	return &Decoder{}
}

// Format returns domain.FormatJSON.
func (d *Decoder) Format() domain.InputFormat {
	return domain.FormatJSON
}

// Decode parses one JSON object. A bare null decodes as a record with
// every field absent.
func (d *Decoder) Decode(line string) (domain.CustomerRecord, error) {
	if wire.IsBlank(line) {
		return domain.CustomerRecord{}, domain.ErrNoContent
	}

	var rec struct {
		UserID    *number `json:"user_id"`
		Name      *string `json:"name"`
		Latitude  *number `json:"latitude"`
		Longitude *number `json:"longitude"`
	}
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return domain.CustomerRecord{}, fmt.Errorf("decode json: %w", err)
	}

	return wire.Fields{
		UserID:    rec.UserID.text(),
		Name:      rec.Name,
		Latitude:  rec.Latitude.text(),
		Longitude: rec.Longitude.text(),
	}.Record()
}

// number holds the literal text of a JSON number or numeric string.
type number string

// UnmarshalJSON accepts 53.0 and "53.0" alike, keeping the text as written.
func (n *number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = number(s)
		return nil
	}
	if len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		*n = number(data)
		return nil
	}
	return fmt.Errorf("expected a number or numeric string, got %s", data)
}

func (n *number) text() *string {
	if n == nil {
		return nil
	}
	s := string(*n)
	return &s
}
