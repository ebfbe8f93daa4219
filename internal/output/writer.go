package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vennsets/internal/codec"
	"vennsets/internal/domain"
)

// Writer writes relation lists and run reports to disk
type Writer struct {
	lists codec.ListExporter
}

// NewWriter creates a writer that formats lists with exporter.
// A nil exporter selects the TSV codec.
func NewWriter(exporter codec.ListExporter) *Writer {
	if exporter == nil {
		exporter = codec.NewTSVCodec()
	}
	return &Writer{lists: exporter}
}

// WriteRelations writes the intersection and union lists to their paths
func (w *Writer) WriteRelations(result *domain.RelationResult, paths Paths) error {
	if err := w.WriteList(result.Intersection, paths.Intersection); err != nil {
		return err
	}
	return w.WriteList(result.Union, paths.Union)
}

// WriteList writes one sorted identifier list to path
func (w *Writer) WriteList(set *domain.IdentifierSet, path string) error {
	return WriteFileAtomic(path, func(out io.Writer) error {
		return w.lists.ExportList(set, out)
	})
}

// WriteReport writes a run summary to path with the given exporter
func (w *Writer) WriteReport(summary *domain.Summary, exporter codec.ReportExporter, path string) error {
	return WriteFileAtomic(path, func(out io.Writer) error {
		return exporter.ExportReport(summary, out)
	})
}

// WriteFileAtomic writes to a temporary file in the destination directory
// and renames it into place, so path either holds the complete content or
// is left untouched. Failures are reported as *domain.OutputWriteError.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	buf := bufio.NewWriter(tmp)
	if err := write(buf); err != nil {
		tmp.Close()
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	if err := buf.Flush(); err != nil {
		tmp.Close()
		return &domain.OutputWriteError{Path: path, Err: fmt.Errorf("flush: %w", err)}
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	return nil
}
