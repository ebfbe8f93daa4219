package loader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"vennsets/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	errEmptyIdentifier = errors.New("first column is empty")
	errInvalidUTF8     = errors.New("identifier is not valid UTF-8")
)

// ListSpec names one input list and the label it is displayed under
type ListSpec struct {
	Path  string
	Label string
}

// Stats describes what a load consumed
type Stats struct {
	Rows       int // non-empty rows read
	Duplicates int // rows whose identifier was already present
}

// LoadFile reads a tab-delimited identifier list into a set.
// Files ending in .gz or .zst are decompressed on the fly.
func LoadFile(path, label string) (*domain.IdentifierSet, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, &domain.FileNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	r, err := decompress(path, f)
	if err != nil {
		return nil, Stats{}, &domain.FileNotFoundError{Path: path, Err: err}
	}
	defer r.Close()

	return Parse(r, path, label)
}

// Parse reads identifier rows from r. The first tab-separated field of every
// non-empty row is trimmed and added to the set; remaining fields are ignored.
// path is only used for the returned set and for error reporting.
func Parse(r io.Reader, path, label string) (*domain.IdentifierSet, Stats, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	// quotes are ordinary characters in identifier lists
	reader.LazyQuotes = true

	var (
		ids   []string
		seen  = make(map[string]struct{})
		stats Stats
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, Stats{}, &domain.MalformedInputError{Path: path, Line: parseErr.StartLine, Err: parseErr.Err}
			}
			return nil, Stats{}, &domain.FileNotFoundError{Path: path, Err: err}
		}

		if blankRecord(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		id := strings.TrimSpace(record[0])
		if id == "" {
			return nil, Stats{}, &domain.MalformedInputError{Path: path, Line: line, Err: errEmptyIdentifier}
		}
		if !utf8.ValidString(id) {
			return nil, Stats{}, &domain.MalformedInputError{Path: path, Line: line, Err: errInvalidUTF8}
		}

		stats.Rows++
		if _, dup := seen[id]; dup {
			stats.Duplicates++
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return domain.NewIdentifierSet(label, path, ids...), stats, nil
}

// LoadAll loads every list in position order and returns them as a
// collection. The first failure aborts the whole load.
func LoadAll(specs []ListSpec) (*domain.SetCollection, []Stats, error) {
	if len(specs) < domain.MinArity || len(specs) > domain.MaxArity {
		return nil, nil, &domain.UnsupportedArityError{Arity: len(specs)}
	}

	sets := make([]*domain.IdentifierSet, len(specs))
	stats := make([]Stats, len(specs))
	for i, spec := range specs {
		set, st, err := LoadFile(spec.Path, spec.Label)
		if err != nil {
			return nil, nil, err
		}
		sets[i] = set
		stats[i] = st
	}

	coll, err := domain.NewSetCollection(sets...)
	if err != nil {
		return nil, nil, fmt.Errorf("build collection: %w", err)
	}
	return coll, stats, nil
}

func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
