package codec

import (
	"io"
	"path/filepath"
	"strings"

	"vennsets/internal/domain"
)

// ListExporter writes one relation list, one identifier per line
type ListExporter interface {
	ExportList(set *domain.IdentifierSet, w io.Writer) error
	Format() string
}

// ReportExporter writes the summary of a run
type ReportExporter interface {
	ExportReport(summary *domain.Summary, w io.Writer) error
	Format() string
}

// ReportExporterFor returns the report exporter for a format name
func ReportExporterFor(format string) (ReportExporter, bool) {
	switch format {
	case "json":
		return NewJSONCodec(), true
	case "yaml", "yml":
		return NewYAMLCodec(), true
	default:
		return nil, false
	}
}

// ReportParser reads a summary written by the matching ReportExporter
type ReportParser interface {
	ParseReport(r io.Reader) (*domain.Summary, error)
	Format() string
}

// ReportParserFor picks a parser from a report file's extension
func ReportParserFor(path string) (ReportParser, bool) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "json":
		return NewJSONCodec(), true
	case "yaml", "yml":
		return NewYAMLCodec(), true
	default:
		return nil, false
	}
}
