package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vennsets/internal/codec"
	"vennsets/internal/domain"
)

var reportCmd = &cobra.Command{
	Use:   "report <summary-file>",
	Short: "Print a summary report written with --report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	path := args[0]
	parser, ok := codec.ReportParserFor(path)
	if !ok {
		return fmt.Errorf("%s: unknown report format (want .json, .yaml or .yml)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return &domain.FileNotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	summary, err := parser.ParseReport(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return printSummary(cmd.OutOrStdout(), summary)
}

// printSummary writes the counts of a run as an aligned table
func printSummary(out io.Writer, s *domain.Summary) error {
	fmt.Fprintf(out, "Title:   %s\n", s.Title)
	fmt.Fprintf(out, "Affix:   %s\n", s.Affix)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nSET\tSIZE\tSOURCE")
	for _, set := range s.Sets {
		fmt.Fprintf(w, "%s\t%s\t%s\n", set.Label, domain.FormatCount(set.Count), set.Source)
	}
	fmt.Fprintf(w, "\nintersection\t%s\t\n", domain.FormatCount(s.Intersection))
	fmt.Fprintf(w, "union\t%s\t\n", domain.FormatCount(s.Union))

	if len(s.Regions) > 0 {
		fmt.Fprintln(w, "\nREGION\tSIZE\t")
		for _, r := range s.Regions {
			fmt.Fprintf(w, "%s\t%s\t\n", regionName(r.Mask, s.Sets), domain.FormatCount(r.Count))
		}
	}
	return w.Flush()
}

// regionName spells a region mask as the labels it belongs to, e.g.
// "List 1 & List 2 only"
func regionName(mask string, sets []domain.SetSummary) string {
	var in []string
	for i, c := range mask {
		if c != '1' {
			continue
		}
		if i < len(sets) {
			in = append(in, sets[i].Label)
		} else {
			in = append(in, fmt.Sprintf("set %d", i+1))
		}
	}
	name := strings.Join(in, " & ")
	if len(in) < len(mask) {
		name += " only"
	}
	return name
}
