// Package domain defines the core types for the vennsets set comparison tool.
//
// This package contains the entities that describe one comparison run: the
// identifier sets loaded from input lists, the ordered collection they form,
// and the relations derived from that collection.
//
// # Core Types
//
// IdentifierSet is a deduplicated, immutable set of opaque identifiers loaded
// from one input file, together with its display label and source path.
//
// SetCollection is the ordered sequence of 1 to 3 identifier sets taking part
// in a run. Position in the collection decides the A, B and C slots of the
// diagram; it has no effect on relation computation.
//
// RelationResult holds the n-ary intersection and union of a collection.
//
// Regions holds the sizes of the exclusive regions of a Venn diagram, keyed
// by membership mask.
//
// # Labels
//
// LabeledSet is the presentation-only projection of an identifier set used by
// diagram renderers. FormatLabel produces the "<label>\n(<count>)" form with
// thousands separators.
//
// # Errors
//
// FileNotFoundError, MalformedInputError, OutputWriteError and
// UnsupportedArityError form the error taxonomy of a run. All of them are
// fatal; callers match them with errors.As.
//
// # Design Principles
//
// - Values are immutable once constructed
// - No filesystem or database access
// - Relation computation is a pure function of its inputs
package domain
