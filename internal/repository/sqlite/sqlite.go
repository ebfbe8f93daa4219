package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vennsets/internal/domain"
	"vennsets/internal/repository"

	_ "modernc.org/sqlite"
)

// Repository implements repository.RunArchive using SQLite
type Repository struct {
	db *sql.DB
}

var _ repository.RunArchive = (*Repository)(nil)

// New opens (or creates) the archive at dbPath
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases coherent and serializes writers
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		affix TEXT NOT NULL,
		title TEXT NOT NULL,
		arity INTEGER NOT NULL,
		out_dir TEXT NOT NULL,
		intersection_count INTEGER NOT NULL,
		union_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_sets (
		run_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		source_path TEXT NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (run_id, position),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS run_regions (
		run_id TEXT NOT NULL,
		mask TEXT NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (run_id, mask),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS run_outputs (
		run_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		path TEXT NOT NULL,
		digest TEXT,
		PRIMARY KEY (run_id, path),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS run_members (
		run_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		identifier TEXT NOT NULL,
		PRIMARY KEY (run_id, kind, identifier),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_run_members_identifier ON run_members(identifier);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SaveRun stores a run and its relation members in one transaction
func (r *Repository) SaveRun(ctx context.Context, rec *domain.RunRecord, result *domain.RelationResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	s := rec.Summary
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, affix, title, arity, out_dir, intersection_count, union_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, formatTime(rec.CreatedAt), s.Affix, s.Title, s.Arity, rec.OutDir, s.Intersection, s.Union); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", rec.ID, err)
	}

	for i, set := range s.Sets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_sets (run_id, position, label, source_path, count) VALUES (?, ?, ?, ?, ?)
		`, rec.ID, i, set.Label, set.Source, set.Count); err != nil {
			return fmt.Errorf("failed to insert set %d: %w", i, err)
		}
	}

	for _, region := range s.Regions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_regions (run_id, mask, count) VALUES (?, ?, ?)
		`, rec.ID, region.Mask, region.Count); err != nil {
			return fmt.Errorf("failed to insert region %s: %w", region.Mask, err)
		}
	}

	for _, out := range rec.Outputs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_outputs (run_id, kind, path, digest) VALUES (?, ?, ?, ?)
		`, rec.ID, string(out.Kind), out.Path, stringToNull(out.Digest)); err != nil {
			return fmt.Errorf("failed to insert output %s: %w", out.Path, err)
		}
	}

	if result != nil {
		if err := insertMembers(ctx, tx, rec.ID, domain.OutputIntersection, result.Intersection); err != nil {
			return err
		}
		if err := insertMembers(ctx, tx, rec.ID, domain.OutputUnion, result.Union); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertMembers(ctx context.Context, tx *sql.Tx, runID string, kind domain.OutputKind, set *domain.IdentifierSet) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_members (run_id, kind, identifier) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare member statement: %w", err)
	}
	defer stmt.Close()

	for _, id := range set.Members() {
		if _, err := stmt.ExecContext(ctx, runID, string(kind), id); err != nil {
			return fmt.Errorf("failed to insert %s member %s: %w", kind, id, err)
		}
	}
	return nil
}

// ListRuns returns the most recent runs first. limit <= 0 returns all runs.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}

	var records []domain.RunRecord
	for rows.Next() {
		var row runRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec, err := row.toDomain()
		if err != nil {
			rows.Close()
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	rows.Close()

	// Details are loaded after the cursor is closed; the pool has one connection.
	for i := range records {
		if err := r.loadDetails(ctx, &records[i]); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// GetRun retrieves a single run by ID, or nil if it does not exist
func (r *Repository) GetRun(ctx context.Context, id string) (*domain.RunRecord, error) {
	var row runRow
	err := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id).Scan(row.scanArgs()...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	rec, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	if err := r.loadDetails(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RunMembers returns the archived intersection or union members of a run in
// ascending order
func (r *Repository) RunMembers(ctx context.Context, id string, kind domain.OutputKind) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT identifier FROM run_members WHERE run_id = ? AND kind = ? ORDER BY identifier
	`, id, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var identifier string
		if err := rows.Scan(&identifier); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, identifier)
	}
	return members, rows.Err()
}

func (r *Repository) loadDetails(ctx context.Context, rec *domain.RunRecord) error {
	sets, err := r.db.QueryContext(ctx, `
		SELECT label, source_path, count FROM run_sets WHERE run_id = ? ORDER BY position
	`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query sets: %w", err)
	}
	for sets.Next() {
		var s domain.SetSummary
		if err := sets.Scan(&s.Label, &s.Source, &s.Count); err != nil {
			sets.Close()
			return fmt.Errorf("failed to scan set: %w", err)
		}
		rec.Summary.Sets = append(rec.Summary.Sets, s)
	}
	sets.Close()

	regions, err := r.db.QueryContext(ctx, `
		SELECT mask, count FROM run_regions WHERE run_id = ?
	`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query regions: %w", err)
	}
	counts := map[string]int{}
	for regions.Next() {
		var mask string
		var count int
		if err := regions.Scan(&mask, &count); err != nil {
			regions.Close()
			return fmt.Errorf("failed to scan region: %w", err)
		}
		counts[mask] = count
	}
	regions.Close()
	for _, mask := range domain.RegionMasks(rec.Summary.Arity) {
		if count, ok := counts[mask]; ok {
			rec.Summary.Regions = append(rec.Summary.Regions, domain.RegionSummary{Mask: mask, Count: count})
		}
	}

	outputs, err := r.db.QueryContext(ctx, `
		SELECT kind, path, digest FROM run_outputs WHERE run_id = ? ORDER BY kind, path
	`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query outputs: %w", err)
	}
	defer outputs.Close()
	for outputs.Next() {
		var kind, path string
		var digest sql.NullString
		if err := outputs.Scan(&kind, &path, &digest); err != nil {
			return fmt.Errorf("failed to scan output: %w", err)
		}
		rec.Outputs = append(rec.Outputs, domain.OutputFile{
			Kind:   domain.OutputKind(kind),
			Path:   path,
			Digest: nullToString(digest),
		})
	}
	return outputs.Err()
}

// DeleteRun removes a run and everything recorded for it
func (r *Repository) DeleteRun(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s: %w", id, repository.ErrRunNotFound)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// timeLayout has fixed-width fractions so stored timestamps sort as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
