package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vennsets/internal/codec"
	"vennsets/internal/config"
	"vennsets/internal/domain"
	"vennsets/internal/loader"
	"vennsets/internal/output"
	"vennsets/internal/render"
	"vennsets/internal/repository"
)

// Outcome describes a finished run
type Outcome struct {
	RunID      string
	Collection *domain.SetCollection
	// Result and Summary are nil for single-list runs
	Result  *domain.RelationResult
	Summary *domain.Summary
	Paths   output.Paths
	Outputs []domain.OutputFile
}

// Pipeline executes comparison runs
type Pipeline struct {
	logger   *zap.Logger
	renderer render.Renderer
	writer   *output.Writer
	archive  repository.RunArchive
	eventBus *EventBus

	now   func() time.Time
	newID func() string
}

// NewPipeline creates a pipeline. renderer and archive may be nil to skip
// the diagram and the archive stages.
func NewPipeline(logger *zap.Logger, renderer render.Renderer, archive repository.RunArchive, eventBus *EventBus) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		logger:   logger,
		renderer: renderer,
		writer:   output.NewWriter(codec.NewTSVCodec()),
		archive:  archive,
		eventBus: eventBus,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Run loads, compares and writes one run
func (p *Pipeline) Run(ctx context.Context, run config.Run) (*Outcome, error) {
	out := &Outcome{RunID: p.newID()}
	log := p.logger.With(zap.String("run_id", out.RunID))

	if err := p.run(ctx, log, run, out); err != nil {
		p.publish(EventRunFailed, out.RunID, err.Error())
		return nil, err
	}

	p.publish(EventRunCompleted, out.RunID, out.Summary)
	log.Info("Done")
	return out, nil
}

func (p *Pipeline) run(ctx context.Context, log *zap.Logger, run config.Run, out *Outcome) error {
	if run.Arity() < domain.MinArity || run.Arity() > domain.MaxArity {
		return &domain.UnsupportedArityError{Arity: run.Arity()}
	}

	p.publish(EventRunStarted, out.RunID, run.Arity())
	log.Info("Number of sets in plot", zap.String("sets", domain.FormatCount(run.Arity())))

	// Load
	log.Info("Loading files")
	coll, stats, err := loader.LoadAll(run.Lists)
	if err != nil {
		return err
	}
	out.Collection = coll
	for i, st := range stats {
		log.Info("Number of lines in file",
			zap.String("path", run.Lists[i].Path),
			zap.String("lines", domain.FormatCount(st.Rows)),
			zap.Int("duplicates", st.Duplicates))
	}
	for _, set := range coll.Sets() {
		log.Info("Set loaded", zap.String("label", set.Label), zap.String("members", domain.FormatCount(set.Len())))
	}
	p.publish(EventSetsLoaded, out.RunID, coll.Labels())

	if !coll.Comparable() {
		log.Info("Single list loaded; nothing to compare")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Compute
	log.Info("Calculating intersections and union")
	result, err := domain.Compute(coll)
	if err != nil {
		return err
	}
	out.Result = result
	out.Summary = domain.NewSummary(coll, result, run.Affix, run.Title)
	log.Info("Relations computed",
		zap.String("intersection", domain.FormatCount(result.Intersection.Len())),
		zap.String("union", domain.FormatCount(result.Union.Len())))
	p.publish(EventRelationsReady, out.RunID, out.Summary)

	out.Paths = output.NewPaths(run.OutDir, run.Affix, coll)
	created, err := output.EnsureLayout(run.OutDir)
	if err != nil {
		return err
	}
	for _, dir := range created {
		log.Info("Created output directory", zap.String("dir", dir))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Render
	if p.renderer != nil {
		log.Info("Generating Venn diagram", zap.String("mode", string(render.ModeFor(run.Display))))
		req, err := render.BuildRequest(coll, run.Title, render.ModeFor(run.Display), out.Paths.Figure)
		if err != nil {
			return err
		}
		if err := p.renderer.Render(ctx, req); err != nil {
			return fmt.Errorf("render diagram: %w", err)
		}
		if !run.Display {
			out.Outputs = append(out.Outputs, domain.OutputFile{Kind: domain.OutputFigure, Path: out.Paths.Figure})
		}
		p.publish(EventFigureRendered, out.RunID, out.Paths.Figure)
	}

	// Write
	if err := p.writer.WriteRelations(result, out.Paths); err != nil {
		return err
	}
	out.Outputs = append(out.Outputs,
		domain.OutputFile{Kind: domain.OutputIntersection, Path: out.Paths.Intersection},
		domain.OutputFile{Kind: domain.OutputUnion, Path: out.Paths.Union},
	)
	for _, format := range run.Reports {
		exporter, ok := codec.ReportExporterFor(format)
		if !ok {
			return fmt.Errorf("unknown report format %q", format)
		}
		path := out.Paths.Report(run.Affix, coll, exporter.Format())
		if err := p.writer.WriteReport(out.Summary, exporter, path); err != nil {
			return err
		}
		out.Outputs = append(out.Outputs, domain.OutputFile{Kind: domain.OutputReport, Path: path})
	}

	for i := range out.Outputs {
		digest, err := output.Digest(out.Outputs[i].Path)
		if err != nil {
			return &domain.OutputWriteError{Path: out.Outputs[i].Path, Err: err}
		}
		out.Outputs[i].Digest = digest
		log.Debug("Wrote output",
			zap.String("kind", string(out.Outputs[i].Kind)),
			zap.String("path", out.Outputs[i].Path),
			zap.String("blake2b", digest))
	}
	p.publish(EventOutputsWritten, out.RunID, out.Outputs)

	// Archive
	if p.archive != nil {
		rec := &domain.RunRecord{
			ID:        out.RunID,
			CreatedAt: p.now(),
			OutDir:    run.OutDir,
			Summary:   *out.Summary,
			Outputs:   out.Outputs,
		}
		if err := p.archive.SaveRun(ctx, rec, result); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		log.Info("Run archived")
		p.publish(EventRunArchived, out.RunID, nil)
	}

	return nil
}

func (p *Pipeline) publish(t EventType, runID string, payload interface{}) {
	p.eventBus.Publish(Event{Type: t, RunID: runID, Payload: payload})
}
