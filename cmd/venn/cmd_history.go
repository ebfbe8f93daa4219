package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vennsets/internal/domain"
	"vennsets/internal/repository/sqlite"
)

var (
	historyArchive string
	historyLimit   int
	historyMembers string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List runs recorded in an archive",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one archived run, optionally with its intersection or union members",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <run-id>",
	Short: "Remove a run from the archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

func init() {
	historyCmd.PersistentFlags().StringVar(&historyArchive, "archive", "", "SQLite archive (default: archive.path from config)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	historyShowCmd.Flags().StringVar(&historyMembers, "members", "", "Also print members: intersection or union")

	historyCmd.AddCommand(historyShowCmd, historyRmCmd)
}

func openArchive() (*sqlite.Repository, error) {
	path := historyArchive
	if path == "" {
		path = cfg.Archive.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no archive given; use --archive or set archive.path")
	}

	repo, err := sqlite.New(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	return repo, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	repo, err := openArchive()
	if err != nil {
		return err
	}
	defer repo.Close()

	runs, err := repo.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs archived")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tAFFIX\tSETS\tINTERSECTION\tUNION")
	for _, rec := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID,
			humanize.Time(rec.CreatedAt),
			rec.Summary.Affix,
			describeSets(rec.Summary.Sets),
			domain.FormatCount(rec.Summary.Intersection),
			domain.FormatCount(rec.Summary.Union))
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	var kind domain.OutputKind
	switch historyMembers {
	case "":
	case string(domain.OutputIntersection), string(domain.OutputUnion):
		kind = domain.OutputKind(historyMembers)
	default:
		return fmt.Errorf("--members must be intersection or union, got %q", historyMembers)
	}

	repo, err := openArchive()
	if err != nil {
		return err
	}
	defer repo.Close()

	rec, err := repo.GetRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("run %s not found", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:     %s\n", rec.ID)
	fmt.Fprintf(out, "When:    %s (%s)\n", rec.CreatedAt.Format("2006-01-02 15:04:05"), humanize.Time(rec.CreatedAt))
	fmt.Fprintf(out, "Output:  %s\n", rec.OutDir)
	if err := printSummary(out, &rec.Summary); err != nil {
		return err
	}

	if len(rec.Outputs) > 0 {
		fmt.Fprintln(out, "\nFiles:")
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, o := range rec.Outputs {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", o.Kind, o.Path, o.Digest)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if kind == "" {
		return nil
	}
	members, err := repo.RunMembers(cmd.Context(), rec.ID, kind)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s members (%s):\n", kind, domain.FormatCount(len(members)))
	for _, m := range members {
		fmt.Fprintln(out, m)
	}
	return nil
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	repo, err := openArchive()
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.DeleteRun(cmd.Context(), args[0]); err != nil {
		return err
	}
	logger.Info("Run removed from archive")
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}

func describeSets(sets []domain.SetSummary) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = fmt.Sprintf("%s (%s)", s.Label, domain.FormatCount(s.Count))
	}
	return strings.Join(parts, ", ")
}
