package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vennsets/internal/config"
	"vennsets/internal/render"
	"vennsets/internal/repository/sqlite"
	"vennsets/internal/service"
)

// runFlags holds the flags shared by run, watch and the root command
type runFlags struct {
	lists    [3]string
	labels   [3]string
	affix    string
	outDir   string
	title    string
	display  bool
	reports  []string
	archive  string
	noFigure bool
}

var (
	rootRunFlags  runFlags
	runRunFlags   runFlags
	watchRunFlags runFlags

	// run flag sets by command, filled by addRunFlags
	commandFlags = map[*cobra.Command]*runFlags{}
)

var runCmd = &cobra.Command{
	Use:   "run [list1 [list2 [list3]]]",
	Short: "Compare lists once and write the results",
	Long: `Loads the lists, writes <out>/lists/intersection-*.txt and
<out>/lists/union-*.txt and renders <out>/figures/vennDiagram-*.png
(or shows the diagram with --display).

Lists may be given with -1/-2/-3 or as positional arguments, not both.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCompare,
}

func init() {
	addRunFlags(runCmd, &runRunFlags)
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	commandFlags[cmd] = f
	flags := cmd.Flags()
	for i := range f.lists {
		n := fmt.Sprint(i + 1)
		flags.StringVarP(&f.lists[i], "list"+n, n, "", "Path to list "+n)
		flags.StringVar(&f.labels[i], "label"+n, "", "Label for list "+n+" (default \"List "+n+"\")")
	}
	flags.StringVarP(&f.affix, "affix", "a", "", "Output file name prefix (default \""+config.DefaultAffix+"\")")
	flags.StringVarP(&f.outDir, "out", "o", "", "Output base directory (default \""+config.DefaultOutputDir+"\")")
	flags.StringVarP(&f.title, "title", "t", "", "Diagram title (default: the affix)")
	flags.BoolVarP(&f.display, "display", "d", false, "Show the diagram instead of saving it")
	flags.StringSliceVar(&f.reports, "report", nil, "Also write a summary report (json, yaml)")
	flags.StringVar(&f.archive, "archive", "", "SQLite database to record the run in")
	flags.BoolVar(&f.noFigure, "no-figure", false, "Skip the diagram")
}

// flagsFor returns the flag set bound to cmd
func flagsFor(cmd *cobra.Command) *runFlags {
	if f, ok := commandFlags[cmd]; ok {
		return f
	}
	return &rootRunFlags
}

// overrides converts the parsed flags and positional lists into config overrides
func (f *runFlags) overrides(cmd *cobra.Command, args []string) (config.Overrides, error) {
	o := config.Overrides{
		Labels:  f.labels[:],
		Affix:   f.affix,
		OutDir:  f.outDir,
		Title:   f.title,
		Reports: f.reports,
		Archive: f.archive,
	}
	if cmd.Flags().Changed("display") {
		o.Display = &f.display
	}

	flagLists := f.lists[:]
	hasFlagLists := f.lists != [3]string{}
	switch {
	case len(args) > 0 && hasFlagLists:
		return o, fmt.Errorf("give lists either with -1/-2/-3 or as arguments, not both")
	case len(args) > 0:
		o.Lists = args
	default:
		// trailing unset slots are not lists
		last := len(flagLists)
		for last > 0 && flagLists[last-1] == "" {
			last--
		}
		o.Lists = flagLists[:last]
	}
	return o, nil
}

func resolveRun(cmd *cobra.Command, args []string) (config.Run, *runFlags, error) {
	f := flagsFor(cmd)
	o, err := f.overrides(cmd, args)
	if err != nil {
		return config.Run{}, f, err
	}
	run, err := config.Resolve(cfg, o)
	return run, f, err
}

// newPipeline wires the renderer and the optional archive. The returned
// cleanup closes the archive.
func newPipeline(run config.Run, noFigure bool, eventBus *service.EventBus) (*service.Pipeline, func(), error) {
	var renderer render.Renderer
	if !noFigure {
		renderer = render.NewPNGRenderer()
	}

	cleanup := func() {}
	if run.Archive == "" {
		return service.NewPipeline(logger, renderer, nil, eventBus), cleanup, nil
	}

	repo, err := sqlite.New(run.Archive)
	if err != nil {
		return nil, cleanup, fmt.Errorf("open archive %s: %w", run.Archive, err)
	}
	logger.Debug("Archive opened", zap.String("path", run.Archive))
	cleanup = func() { repo.Close() }
	return service.NewPipeline(logger, renderer, repo, eventBus), cleanup, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runCompare(cmd *cobra.Command, args []string) error {
	run, f, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	pipeline, cleanup, err := newPipeline(run, f.noFigure, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	out, err := pipeline.Run(ctx, run)
	if err != nil {
		return err
	}

	for _, o := range out.Outputs {
		fmt.Fprintln(cmd.OutOrStdout(), o.Path)
	}
	return nil
}
