package codec

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"vennsets/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONCodec handles JSON report export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// ExportReport exports a run summary to JSON
func (c *JSONCodec) ExportReport(summary *domain.Summary, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// ParseReport reads a run summary back from JSON
func (c *JSONCodec) ParseReport(r io.Reader) (*domain.Summary, error) {
	var summary domain.Summary
	if err := json.NewDecoder(r).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &summary, nil
}
