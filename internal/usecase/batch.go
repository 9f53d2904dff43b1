package usecase

import (
	"context"
	"log/slog"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/logger"
	"github.com/Shan319/number-dna-analyze/internal/ports"
)

// BatchItem is the outcome for one profile input. Err is set instead of
// Result when that input failed.
type BatchItem struct {
	Label  string        `json:"label"`
	Input  domain.Input  `json:"input"`
	Result AnalyzeResult `json:"result"`
	Err    string        `json:"error,omitempty"`
}

// BatchResult groups the items of one profile run.
type BatchResult struct {
	Profile string      `json:"profile"`
	Path    string      `json:"path"`
	Items   []BatchItem `json:"items"`
}

// Failed counts items that ended with an error.
func (r BatchResult) Failed() int {
	n := 0
	for _, it := range r.Items {
		if it.Err != "" {
			n++
		}
	}
	return n
}

type Batch struct {
	profiles ports.ProfileLoader
	analyze  *Analyze
	log      *slog.Logger
}

func NewBatch(pl ports.ProfileLoader, analyze *Analyze, log *slog.Logger) *Batch {
	return &Batch{profiles: pl, analyze: analyze, log: logger.OrDiscard(log)}
}

// Execute analyzes every input of the profile at path. base is overridden by
// the profile's own generation settings. A failing input is recorded and the
// run continues.
func (uc *Batch) Execute(ctx context.Context, path string, base AnalyzeRequest) (BatchResult, error) {
	prof, err := uc.profiles.LoadProfile(path)
	if err != nil {
		return BatchResult{}, err
	}

	gen := prof.Generate.Apply(base.Generate)
	if err := gen.Validate(); err != nil {
		return BatchResult{}, err
	}

	out := BatchResult{
		Profile: prof.Name,
		Path:    path,
		Items:   make([]BatchItem, 0, len(prof.Inputs)),
	}

	for i, pi := range prof.Inputs {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		req := base
		req.Input = pi.Input
		req.Generate = gen
		if base.Seed != 0 {
			// distinct but reproducible per input
			req.Seed = base.Seed + uint64(i)
		}

		item := BatchItem{Label: pi.Label, Input: pi.Input}
		res, runErr := uc.analyze.Execute(ctx, req)
		if runErr != nil {
			uc.log.Warn("batch.item_failed", "profile", prof.Name, "label", pi.Label, "err", runErr)
			item.Err = runErr.Error()
		} else {
			item.Result = res
		}
		out.Items = append(out.Items, item)
	}

	uc.log.Info("batch.done", "profile", prof.Name, "items", len(out.Items), "failed", out.Failed())
	return out, nil
}
