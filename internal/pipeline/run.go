// Package pipeline provides the high-level orchestration for dashboard generation.
package pipeline

import (
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hometap/smartfacts-dashboard/internal/aggregation"
	"github.com/hometap/smartfacts-dashboard/internal/extraction"
	"github.com/hometap/smartfacts-dashboard/internal/observability"
	"github.com/hometap/smartfacts-dashboard/internal/rendering"
	"github.com/hometap/smartfacts-dashboard/internal/types"
)

// Pipeline step names carried on progress events.
const (
	StepExtract   = "extract"
	StepAggregate = "aggregate"
	StepRender    = "render"
	StepWrite     = "write"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	CodebaseRoot string // explicit codebase root; discovery applies when empty
	OutputPath   string
	Title        string
	TemplatePath string
	Verbose      bool
	Logger       *zap.Logger
	Now          func() time.Time // injectable clock for the rendered page
	OnProgress   ProgressCallback
}

// Result holds the artifacts of a completed run.
type Result struct {
	RunID      uuid.UUID
	Insights   []types.Insight
	Counts     types.AggregateCounts
	OutputPath string
}

// Run executes the extract, aggregate, render, and write steps once. The flow is
// strictly linear and synchronous; a run either completes and writes the
// output file or fails and leaves any prior output untouched.
func Run(opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))

	printer := observability.NewPrinter(os.Stdout)

	root, err := extraction.ResolveCodebaseRoot(opts.CodebaseRoot)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved codebase root", zap.String("root", root))

	sources, err := extraction.LoadSources(root)
	if err != nil {
		return nil, err
	}

	insights := extraction.New(logger).Extract(sources.Definitions, sources.DisplayTemplates)
	logger.Info("extracted insights", zap.Int("count", len(insights)))
	emitProgress(&opts, runID, StepExtract, "extracted insight records", len(insights))
	if opts.Verbose {
		printer.PrintExtractionSummary(insights)
	}

	counts := aggregation.Count(insights)
	emitProgress(&opts, runID, StepAggregate, "computed aggregate counts", counts)
	if opts.Verbose {
		printer.PrintAggregateCounts(counts)
	}

	page, err := rendering.RenderDashboard(insights, counts, rendering.Options{
		Title:        opts.Title,
		TemplatePath: opts.TemplatePath,
		Now:          opts.Now,
	})
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, StepRender, "rendered dashboard page", nil)

	if err := rendering.WriteDashboard(opts.OutputPath, page); err != nil {
		return nil, err
	}
	logger.Info("wrote dashboard", zap.String("path", opts.OutputPath), zap.Int("insights", len(insights)))
	emitProgress(&opts, runID, StepWrite, "wrote output file", opts.OutputPath)

	return &Result{
		RunID:      runID,
		Insights:   insights,
		Counts:     counts,
		OutputPath: opts.OutputPath,
	}, nil
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}
