// Package repository defines the data access interfaces for vennsets.
//
// Runs are self-contained: nothing here is read back as input to a later
// run. The archive exists so users can list past comparisons, check that a
// rerun produced byte-identical files (via the recorded digests) and query
// intersection and union members with plain SQL.
//
// # SQLite Implementation
//
// The sqlite subpackage implements RunArchive on a single SQLite file
// (pure-Go driver, no cgo). Each run is written in one transaction:
//
// - runs: one row per run with affix, title, arity and relation sizes
// - run_sets: the input lists by position
// - run_regions: exclusive region sizes
// - run_outputs: written files with their BLAKE2b-256 digests
// - run_members: intersection and union identifiers
//
// # Schema Migration
//
// The schema is created on open with CREATE TABLE IF NOT EXISTS.
//
// # Testing
//
// The sqlite repository is tested against in-memory databases.
package repository
