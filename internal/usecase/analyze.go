package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/logger"
	"github.com/Shan319/number-dna-analyze/internal/ports"
	"github.com/Shan319/number-dna-analyze/internal/usecase/classify"
	"github.com/Shan319/number-dna-analyze/internal/usecase/preprocess"
	"github.com/Shan319/number-dna-analyze/internal/usecase/resolve"
	"github.com/Shan319/number-dna-analyze/internal/usecase/synth"
	"github.com/Shan319/number-dna-analyze/internal/usecase/transform"
)

// AnalyzeRequest is one pipeline invocation.
type AnalyzeRequest struct {
	Input    domain.Input
	Generate domain.GenerateRequest

	// Seed fixes the random source; 0 draws one from entropy.
	Seed uint64

	// Save persists the analysis when a history store is configured.
	Save bool
}

// AnalyzeResult carries the analysis and, when it was saved, its record id.
type AnalyzeResult struct {
	Analysis domain.Analysis `json:"analysis"`
	RecordID string          `json:"record_id,omitempty"`
}

// Analyze runs the full pipeline for one input and optionally saves it.
type Analyze struct {
	strokes  ports.StrokeTable
	history  ports.HistoryStore
	validate bool
	log      *slog.Logger
}

// AnalyzeOption configures an Analyze.
type AnalyzeOption func(*Analyze)

// WithHistory enables saving. Without it Save requests are ignored.
func WithHistory(store ports.HistoryStore) AnalyzeOption {
	return func(a *Analyze) { a.history = store }
}

// WithValidation turns input format checks on or off.
func WithValidation(enabled bool) AnalyzeOption {
	return func(a *Analyze) { a.validate = enabled }
}

func WithAnalyzeLogger(l *slog.Logger) AnalyzeOption {
	return func(a *Analyze) { a.log = l }
}

// NewAnalyze builds the pipeline. strokes may be nil; name input then fails
// with a not-found error.
func NewAnalyze(strokes ports.StrokeTable, opts ...AnalyzeOption) *Analyze {
	a := &Analyze{strokes: strokes, validate: true}
	for _, opt := range opts {
		opt(a)
	}
	a.log = logger.OrDiscard(a.log)
	return a
}

// Execute runs preprocess, transform, classify, resolve and synthesize in
// that order.
func (uc *Analyze) Execute(ctx context.Context, req AnalyzeRequest) (AnalyzeResult, error) {
	if err := ctx.Err(); err != nil {
		return AnalyzeResult{}, err
	}

	if err := req.Generate.Validate(); err != nil {
		return AnalyzeResult{}, err
	}
	if uc.validate {
		if err := preprocess.ValidateAffix(req.Generate.Affix); err != nil {
			return AnalyzeResult{}, err
		}
		// Blank input is reported as an empty analysis, not a format error.
		if strings.TrimSpace(req.Input.Value) != "" {
			if err := preprocess.Validate(req.Input); err != nil {
				return AnalyzeResult{}, err
			}
		}
	}

	digits, err := preprocess.Digits(req.Input, uc.strokes)
	if err != nil {
		return AnalyzeResult{}, err
	}

	uc.log.Info("analyze.start", "kind", req.Input.Kind, "digits", len(digits))

	pairs := transform.Pairs(digits)
	labels := classify.Labels(pairs)

	a := domain.Analysis{
		Input:      req.Input,
		Digits:     digits,
		Pairs:      pairs,
		Labels:     labels,
		Result:     resolve.Resolve(labels),
		Request:    req.Generate,
		Candidates: []domain.Candidate{},
	}

	if len(pairs) == 0 {
		a.Empty = true
		uc.log.Info("analyze.empty", "kind", req.Input.Kind)
		return AnalyzeResult{Analysis: a}, nil
	}

	candidates, err := synth.New(synth.NewRand(req.Seed)).Generate(a.Result.Adjusted, req.Generate)
	if err != nil {
		return AnalyzeResult{}, err
	}
	a.Candidates = candidates

	degraded := 0
	for _, c := range candidates {
		if c.Degraded {
			degraded++
		}
	}
	if degraded > 0 {
		uc.log.Warn("synth.degraded", "count", degraded, "of", len(candidates), "length", req.Generate.Length)
	}

	out := AnalyzeResult{Analysis: a}
	if !req.Save || uc.history == nil {
		return out, nil
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	id, err := uc.history.Save(domain.Record{Analysis: a})
	if err != nil {
		return out, err
	}
	out.RecordID = id

	uc.log.Info("analyze.done", "kind", req.Input.Kind, "candidates", len(candidates), "record", id)
	return out, nil
}
