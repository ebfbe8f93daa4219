package config

import (
	"fmt"
	"strings"
	"time"

	"vennsets/internal/codec"
	"vennsets/internal/domain"
	"vennsets/internal/loader"
)

// Overrides are the values given on the command line. Empty strings and
// nil pointers mean "not given".
type Overrides struct {
	Lists   []string
	Labels  []string
	Affix   string
	OutDir  string
	Title   string
	Display *bool
	Reports []string
	Archive string
}

// Run is the fully resolved, read-only configuration of one pipeline run
type Run struct {
	Lists    []loader.ListSpec
	Affix    string
	OutDir   string
	Title    string
	Display  bool
	Reports  []string
	Archive  string
	Debounce time.Duration
}

// Arity returns the number of lists in the run
func (r Run) Arity() int {
	return len(r.Lists)
}

// Resolve combines the config with command-line overrides. Lists keep the
// position they were given in; list 3 without list 2 is rejected rather
// than silently shifted into slot B.
func Resolve(cfg *Config, o Overrides) (Run, error) {
	if len(o.Lists) > domain.MaxArity {
		return Run{}, &domain.UnsupportedArityError{Arity: len(o.Lists)}
	}

	var lists []loader.ListSpec
	for i, path := range o.Lists {
		path = strings.TrimSpace(path)
		if path == "" {
			if i == 0 {
				return Run{}, fmt.Errorf("list 1 is required")
			}
			if hasListAfter(o.Lists, i) {
				return Run{}, fmt.Errorf("list %d given without list %d", i+2, i+1)
			}
			break
		}

		label, err := resolveLabel(cfg, o.Labels, i)
		if err != nil {
			return Run{}, err
		}
		lists = append(lists, loader.ListSpec{Path: path, Label: label})
	}
	if len(lists) == 0 {
		return Run{}, fmt.Errorf("list 1 is required")
	}

	run := Run{
		Lists:    lists,
		Affix:    firstNonEmpty(o.Affix, cfg.Affix, DefaultAffix),
		OutDir:   firstNonEmpty(o.OutDir, cfg.Output.Dir, DefaultOutputDir),
		Display:  cfg.Display,
		Reports:  cfg.Output.Reports,
		Archive:  firstNonEmpty(o.Archive, cfg.Archive.Path),
		Debounce: DefaultDebounce,
	}
	run.Title = firstNonEmpty(o.Title, cfg.Title, run.Affix)
	if o.Display != nil {
		run.Display = *o.Display
	}
	if len(o.Reports) > 0 {
		run.Reports = o.Reports
	}
	if cfg.Watch.Debounce != nil {
		run.Debounce = cfg.Watch.Debounce.Duration()
	}

	if strings.ContainsAny(run.Affix, `/\`) {
		return Run{}, fmt.Errorf("affix %q must not contain path separators", run.Affix)
	}
	for _, format := range run.Reports {
		if _, ok := codec.ReportExporterFor(format); !ok {
			return Run{}, fmt.Errorf("unknown report format %q", format)
		}
	}

	return run, nil
}

func resolveLabel(cfg *Config, labels []string, i int) (string, error) {
	var label string
	if i < len(labels) {
		label = strings.TrimSpace(labels[i])
	}
	if label == "" && i < len(cfg.Labels) {
		label = strings.TrimSpace(cfg.Labels[i])
	}
	if label == "" {
		label = domain.DefaultLabels[i]
	}
	if strings.ContainsAny(label, `/\`) {
		return "", fmt.Errorf("label %q must not contain path separators", label)
	}
	return label, nil
}

func hasListAfter(lists []string, i int) bool {
	for _, p := range lists[i+1:] {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
