package domain

import "time"

// OutputKind names the role of a file written by a run
type OutputKind string

const (
	OutputIntersection OutputKind = "intersection"
	OutputUnion        OutputKind = "union"
	OutputFigure       OutputKind = "figure"
	OutputReport       OutputKind = "report"
)

// OutputFile is one file written by a run
type OutputFile struct {
	Kind   OutputKind `json:"kind"`
	Path   string     `json:"path"`
	Digest string     `json:"digest,omitempty"` // hex BLAKE2b-256 of the content
}

// RunRecord is the archived description of a completed run.
// It is written after the run and never read back as run input.
type RunRecord struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	OutDir    string       `json:"out_dir"`
	Summary   Summary      `json:"summary"`
	Outputs   []OutputFile `json:"outputs"`
}
