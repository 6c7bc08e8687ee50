// Package orchestrator runs generation across whole product sets: it
// expands the requested content dimensions into individual requests,
// feeds the results to analytics, and optionally saves a report.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brandboost/brandboost/internal/analytics"
	"github.com/brandboost/brandboost/internal/catalog"
	"github.com/brandboost/brandboost/internal/content"
	"github.com/brandboost/brandboost/internal/export"
)

// ErrEmptyBatch is returned when a batch has no products to work on.
var ErrEmptyBatch = errors.New("batch needs at least one product")

// BatchSpec describes one batch run. Empty dimension slices default to
// description, professional and English respectively.
type BatchSpec struct {
	Products  []catalog.Product
	Types     []content.ContentType
	Tones     []content.Tone
	Languages []content.Language

	// SaveDir, when set, receives a text report of the batch.
	SaveDir string

	// Offline skips the remote model and renders fallback templates only.
	Offline bool
}

// BatchItem is the outcome of one (product, type, tone, language) cell.
// Note is set instead of Result when the combination was skipped.
type BatchItem struct {
	Request        content.Request
	Result         content.Result
	Recommendation string
	Note           string
}

// BatchReport aggregates a finished batch.
type BatchReport struct {
	Items      []BatchItem
	Snapshot   analytics.Snapshot
	ReportPath string
}

// Generated returns the items that produced copy.
func (r *BatchReport) Generated() []BatchItem {
	var items []BatchItem
	for _, item := range r.Items {
		if item.Note == "" {
			items = append(items, item)
		}
	}
	return items
}

// Skipped returns the items whose combination did not validate.
func (r *BatchReport) Skipped() []BatchItem {
	var items []BatchItem
	for _, item := range r.Items {
		if item.Note != "" {
			items = append(items, item)
		}
	}
	return items
}

// RunBatch generates copy for the cross product of the spec dimensions.
// Invalid combinations are recorded as skipped items rather than failing
// the batch. When engine is nil a default one is used; when gen is nil or
// spec.Offline is set the fallback templates produce the copy.
func RunBatch(ctx context.Context, gen *content.Generator, engine *analytics.Engine, spec BatchSpec) (*BatchReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled before batch: %w", err)
	}
	if len(spec.Products) == 0 {
		return nil, ErrEmptyBatch
	}
	if engine == nil {
		engine = analytics.NewEngine(analytics.DefaultMinutesPerPiece, analytics.DefaultCostPerPiece)
	}

	types := spec.Types
	if len(types) == 0 {
		types = []content.ContentType{content.TypeDescription}
	}
	tones := spec.Tones
	if len(tones) == 0 {
		tones = []content.Tone{content.ToneProfessional}
	}
	langs := spec.Languages
	if len(langs) == 0 {
		langs = []content.Language{content.LangEnglish}
	}

	slog.Info("Orchestrator.RunBatch: starting batch",
		"products", len(spec.Products),
		"types", len(types),
		"tones", len(tones),
		"languages", len(langs),
		"offline", spec.Offline || gen == nil)

	report := &BatchReport{}
	var records []export.Record

	for _, product := range spec.Products {
		for _, ct := range types {
			for _, tone := range tones {
				for _, lang := range langs {
					if err := ctx.Err(); err != nil {
						return nil, fmt.Errorf("context cancelled during batch: %w", err)
					}

					req := content.Request{Product: product, Type: ct, Tone: tone, Language: lang}
					item := BatchItem{Request: req}

					if err := req.Validate(); err != nil {
						slog.Warn("Orchestrator.RunBatch: combination skipped",
							"product", product.Name, "type", ct, "tone", tone, "error", err)
						item.Note = err.Error()
						report.Items = append(report.Items, item)
						continue
					}

					var res content.Result
					if spec.Offline || gen == nil {
						res = content.Fallback(req, "")
					} else {
						var err error
						res, err = gen.Generate(ctx, req)
						if err != nil {
							return nil, fmt.Errorf("generate %s for %s: %w", ct, product.Name, err)
						}
					}

					item.Result = res
					item.Recommendation = content.Recommendation(ct, tone)
					engine.Record(res)

					report.Items = append(report.Items, item)
					records = append(records, export.FromResult(req, res))
				}
			}
		}
	}

	report.Snapshot = engine.Snapshot()

	if spec.SaveDir != "" && len(records) > 0 {
		path, err := export.SaveReport(records, spec.SaveDir)
		if err != nil {
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
		report.ReportPath = path
	}

	slog.Info("Orchestrator.RunBatch: batch finished",
		"generated", len(report.Generated()),
		"skipped", len(report.Skipped()),
		"report", report.ReportPath)

	return report, nil
}
