// Package render turns a set collection into a Venn diagram.
//
// BuildRequest assembles what a renderer needs: one labeled set per slot
// (A, B, C in collection order), the exclusive region sizes, a title and a
// display mode. Renderer implementations own all geometry and encoding.
package render

import (
	"context"
	"errors"

	"vennsets/internal/domain"
)

// DisplayMode selects whether a diagram is shown or saved
type DisplayMode string

const (
	ModeInteractive DisplayMode = "interactive"
	ModeSaveToPath  DisplayMode = "save-to-path"
)

// ModeFor maps the CLI display switch to a mode
func ModeFor(display bool) DisplayMode {
	if display {
		return ModeInteractive
	}
	return ModeSaveToPath
}

// Request is everything a renderer receives for one diagram
type Request struct {
	LabeledSets []domain.LabeledSet
	Regions     domain.Regions
	Title       string
	Mode        DisplayMode
	// Path is the destination for ModeSaveToPath
	Path string
}

// Renderer draws a diagram for a request
type Renderer interface {
	Render(ctx context.Context, req *Request) error
}

// BuildRequest assembles the render request for a collection of 2 or 3 sets
func BuildRequest(c *domain.SetCollection, title string, mode DisplayMode, path string) (*Request, error) {
	if c == nil || !c.Comparable() {
		arity := 0
		if c != nil {
			arity = c.Arity()
		}
		return nil, &domain.UnsupportedArityError{Arity: arity, Want: "2-3"}
	}
	if mode == ModeSaveToPath && path == "" {
		return nil, errors.New("render: save-to-path mode needs a destination path")
	}

	labeled := make([]domain.LabeledSet, 0, c.Arity())
	for _, s := range c.Sets() {
		labeled = append(labeled, domain.Labeled(s))
	}

	return &Request{
		LabeledSets: labeled,
		Regions:     domain.ComputeRegions(c),
		Title:       title,
		Mode:        mode,
		Path:        path,
	}, nil
}

// pairOverlap returns how many identifiers slots i and j share
func (r *Request) pairOverlap(i, j int) int {
	n := 0
	for mask, count := range r.Regions {
		if i < len(mask) && j < len(mask) && mask[i] == '1' && mask[j] == '1' {
			n += count
		}
	}
	return n
}
