package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vennsets/internal/service"
	"vennsets/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [list1 [list2 [list3]]]",
	Short: "Re-run the comparison whenever an input list changes",
	Long: `Runs the comparison once, then watches the input lists and runs it again
after each change. A failing run is logged and watching continues.
Stop with Ctrl-C.`,
	Args: cobra.ArbitraryArgs,
	RunE: runWatch,
}

func init() {
	addRunFlags(watchCmd, &watchRunFlags)
}

func runWatch(cmd *cobra.Command, args []string) error {
	run, f, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	eventBus := service.NewEventBus()
	events := make(chan service.Event, 100)
	eventBus.Subscribe(events)

	pipeline, cleanup, err := newPipeline(run, f.noFigure, eventBus)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event := <-events:
				logger.Debug("Event", zap.String("type", string(event.Type)), zap.String("run_id", event.RunID))
			case <-ctx.Done():
				return
			}
		}
	}()
	defer func() {
		cancel()
		<-done
	}()

	once := func(ctx context.Context, changed []string) {
		if _, err := pipeline.Run(ctx, run); err != nil {
			logger.Error("Run failed", zap.Error(err))
		}
	}
	once(ctx, nil)

	paths := make([]string, 0, len(run.Lists))
	for _, l := range run.Lists {
		paths = append(paths, l.Path)
	}

	err = watcher.New(paths, once).
		WithDebounce(run.Debounce).
		WithLogger(logger).
		Watch(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("Watch stopped")
		return nil
	}
	return err
}
