// Package ingest provides the import pipeline that takes a VUE map file
// through reading, extraction, export, and verification stages.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/vuegraph/vuegraph/engine/domain"
	"github.com/vuegraph/vuegraph/engine/graph"
	"github.com/vuegraph/vuegraph/engine/vuemap"
	"github.com/vuegraph/vuegraph/pkg/fn"
)

// Deps holds the external dependencies for the import pipeline.
type Deps struct {
	Store  *graph.GraphStore
	Logger *slog.Logger
}

// --- Pipeline Stages ---

// ReadStage parses a .vue file into its raw element tree.
var ReadStage fn.Stage[string, *vuemap.RawMap] = func(_ context.Context, path string) fn.Result[*vuemap.RawMap] {
	return fn.FromPair(vuemap.Read(path))
}

// ExtractStage builds the graph model from the raw tree.
var ExtractStage fn.Stage[*vuemap.RawMap, *domain.GraphModel] = func(_ context.Context, raw *vuemap.RawMap) fn.Result[*domain.GraphModel] {
	return fn.FromPair(vuemap.Extract(raw))
}

// NewExportStage creates a stage that writes the model through the store.
func NewExportStage(gs *graph.GraphStore) fn.Stage[*domain.GraphModel, Exported] {
	return func(ctx context.Context, m *domain.GraphModel) fn.Result[Exported] {
		res, err := gs.Export(ctx, m)
		if err != nil {
			return fn.Err[Exported](err)
		}
		slog.Info("export complete",
			"map", m.Label,
			"run_id", res.RunID,
			"nodes", len(res.NodeIDs),
			"relationships", res.Relationships,
		)
		return fn.Ok(Exported{Model: m, Result: res})
	}
}

// NewConfirmStage creates a stage that re-counts the exported elements
// and records the verdict. A count mismatch is a verdict, not an error.
func NewConfirmStage(gs *graph.GraphStore) fn.Stage[Exported, Report] {
	return func(ctx context.Context, e Exported) fn.Result[Report] {
		ok, err := gs.Confirm(ctx, e.Model, e.Result)
		if err != nil {
			return fn.Err[Report](err)
		}
		return fn.Ok(Report{Stats: e.Model.Stats, Result: e.Result, Verified: ok, Checked: true})
	}
}

// warnUnsupported logs maps whose nodes carry resources the model only
// flags, without interrupting the run.
func warnUnsupported(log *slog.Logger) fn.Stage[*domain.GraphModel, *domain.GraphModel] {
	return fn.TapStage(func(_ context.Context, m *domain.GraphModel) {
		if m.Stats.Unsupported > 0 {
			log.Warn("map contains unsupported resources",
				"map", m.Label,
				"count", m.Stats.Unsupported,
			)
		}
	})
}

// LoggedStage wraps a stage with entry/exit logs and the elapsed duration.
func LoggedStage[In, Out any](name string, log *slog.Logger, stage fn.Stage[In, Out]) fn.Stage[In, Out] {
	return func(ctx context.Context, in In) fn.Result[Out] {
		log.Debug("stage.enter", "stage", name)
		start := time.Now()
		out := stage(ctx, in)
		if out.IsErr() {
			_, err := out.Unwrap()
			log.Error("stage.failed", "stage", name, "error", err, "duration", time.Since(start))
			return out
		}
		log.Debug("stage.exit", "stage", name, "duration", time.Since(start))
		return out
	}
}

func instrument[In, Out any](name string, log *slog.Logger, s fn.Stage[In, Out]) fn.Stage[In, Out] {
	return fn.TracedStage(name, LoggedStage(name, log, s))
}

// NewPipeline wires read → extract → export → confirm for one map file.
func NewPipeline(deps Deps) fn.Stage[string, Report] {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	extracted := fn.Then(
		instrument("read", log, ReadStage),
		fn.Then(instrument("extract", log, ExtractStage), warnUnsupported(log)),
	)
	exported := fn.Then(extracted, instrument("export", log, NewExportStage(deps.Store)))
	return fn.Then(exported, instrument("confirm", log, NewConfirmStage(deps.Store)))
}

// NewExportPipeline wires read → extract → export, skipping verification.
// The report comes back unchecked.
func NewExportPipeline(deps Deps) fn.Stage[string, Report] {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	extracted := fn.Then(
		instrument("read", log, ReadStage),
		fn.Then(instrument("extract", log, ExtractStage), warnUnsupported(log)),
	)
	exported := fn.Then(extracted, instrument("export", log, NewExportStage(deps.Store)))
	return fn.Then(exported, fn.MapStage(func(e Exported) Report {
		return Report{Stats: e.Model.Stats, Result: e.Result}
	}))
}

// NewPreviewPipeline wires read → extract only, for listings and dry
// runs. No store required.
func NewPreviewPipeline(log *slog.Logger) fn.Stage[string, *domain.GraphModel] {
	if log == nil {
		log = slog.Default()
	}
	return fn.Then(
		instrument("read", log, ReadStage),
		fn.Then(instrument("extract", log, ExtractStage), warnUnsupported(log)),
	)
}

// Run executes the full pipeline for one file.
func Run(ctx context.Context, deps Deps, path string) (Report, error) {
	return NewPipeline(deps)(ctx, path).Unwrap()
}
