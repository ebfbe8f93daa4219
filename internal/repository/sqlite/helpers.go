package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"vennsets/internal/domain"
)

// ============================================================================
// Null Conversion Helpers
// ============================================================================

// nullToString converts sql.NullString to string (empty if null)
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull converts string to sql.NullString (null if empty)
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// ============================================================================
// Run Row Scanner
// ============================================================================

// runColumns is the column list for run queries; runRow.scanArgs must match it
const runColumns = `id, created_at, affix, title, arity, out_dir, intersection_count, union_count`

// runRow holds all columns from a run query for scanning
type runRow struct {
	ID                string
	CreatedAt         string
	Affix             string
	Title             string
	Arity             int
	OutDir            string
	IntersectionCount int
	UnionCount        int
}

// scanArgs returns pointers to all fields for sql.Scan()
func (r *runRow) scanArgs() []interface{} {
	return []interface{}{
		&r.ID,                // 1
		&r.CreatedAt,         // 2
		&r.Affix,             // 3
		&r.Title,             // 4
		&r.Arity,             // 5
		&r.OutDir,            // 6
		&r.IntersectionCount, // 7
		&r.UnionCount,        // 8
	}
}

// toDomain converts the scanned row to a domain.RunRecord without details
func (r *runRow) toDomain() (*domain.RunRecord, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at of run %s: %w", r.ID, err)
	}
	return &domain.RunRecord{
		ID:        r.ID,
		CreatedAt: createdAt,
		OutDir:    r.OutDir,
		Summary: domain.Summary{
			Affix:        r.Affix,
			Title:        r.Title,
			Arity:        r.Arity,
			Intersection: r.IntersectionCount,
			Union:        r.UnionCount,
		},
	}, nil
}
