// Package service runs the vennsets comparison pipeline.
//
// Pipeline.Run executes one run strictly in sequence: every list is loaded
// before relations are computed, and relations are computed before any
// file is written. The first error aborts the run.
//
// # Stages
//
//  1. Load: each list is parsed into an identifier set, by position
//  2. Compute: n-ary intersection and union of the collection
//  3. Render: the diagram request is handed to the configured renderer
//  4. Write: sorted intersection and union lists, plus optional reports
//  5. Archive: the run is recorded if an archive is configured
//
// A single list is a valid degenerate run: it is loaded and reported, and
// nothing is computed or written.
//
// # Event System
//
// Stages publish events on an optional EventBus so watch mode and tests can
// follow progress without parsing logs.
package service
