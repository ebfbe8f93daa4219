package codec

import (
	"fmt"
	"io"

	"vennsets/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML report export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// ExportReport exports a run summary to YAML
func (c *YAMLCodec) ExportReport(summary *domain.Summary, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// ParseReport reads a run summary back from YAML
func (c *YAMLCodec) ParseReport(r io.Reader) (*domain.Summary, error) {
	var summary domain.Summary
	if err := yaml.NewDecoder(r).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &summary, nil
}
