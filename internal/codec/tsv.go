package codec

import (
	"encoding/csv"
	"fmt"
	"io"

	"vennsets/internal/domain"
)

// TSVCodec writes identifier lists as a single tab-delimited column
type TSVCodec struct{}

// NewTSVCodec creates a new TSV codec
func NewTSVCodec() *TSVCodec {
	return &TSVCodec{}
}

// Format returns the codec format identifier
func (c *TSVCodec) Format() string {
	return "tsv"
}

// ExportList writes the members of set in ascending order with LF line endings
func (c *TSVCodec) ExportList(set *domain.IdentifierSet, w io.Writer) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	row := make([]string, 1)
	for _, id := range set.Members() {
		row[0] = id
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush TSV: %w", err)
	}
	return nil
}
