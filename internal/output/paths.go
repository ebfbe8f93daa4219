package output

import (
	"fmt"
	"os"
	"path/filepath"

	"vennsets/internal/domain"
)

const (
	// FiguresDir holds rendered diagrams under the output base
	FiguresDir = "figures"
	// ListsDir holds relation lists and reports under the output base
	ListsDir = "lists"
)

// Paths are the destinations of one run, derived from the run parameters only
type Paths struct {
	Base         string
	Figure       string
	Intersection string
	Union        string
}

// NewPaths builds the output file names for a collection:
//
//	<base>/lists/intersection-<affix>-<arity>-<label1>_<label2>[_<label3>].txt
//	<base>/lists/union-<affix>-<arity>-<labels>.txt
//	<base>/figures/vennDiagram-<affix>-<arity>-<labels>.png
func NewPaths(base, affix string, c *domain.SetCollection) Paths {
	stem := Stem(affix, c)
	return Paths{
		Base:         base,
		Figure:       filepath.Join(base, FiguresDir, "vennDiagram-"+stem+".png"),
		Intersection: filepath.Join(base, ListsDir, "intersection-"+stem+".txt"),
		Union:        filepath.Join(base, ListsDir, "union-"+stem+".txt"),
	}
}

// Stem returns "<affix>-<arity>-<labels>"
func Stem(affix string, c *domain.SetCollection) string {
	return fmt.Sprintf("%s-%s-%s", affix, domain.FormatCount(c.Arity()), c.LabelSuffix())
}

// Report returns the summary report path for a format extension
func (p Paths) Report(affix string, c *domain.SetCollection, ext string) string {
	return filepath.Join(p.Base, ListsDir, "summary-"+Stem(affix, c)+"."+ext)
}

// EnsureLayout creates <base>, <base>/figures and <base>/lists if missing.
// It returns the directories it had to create.
func EnsureLayout(base string) ([]string, error) {
	var created []string
	for _, dir := range []string{base, filepath.Join(base, FiguresDir), filepath.Join(base, ListsDir)} {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return created, &domain.OutputWriteError{Path: dir, Err: fmt.Errorf("not a directory")}
			}
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, &domain.OutputWriteError{Path: dir, Err: err}
		}
		created = append(created, dir)
	}
	return created, nil
}
