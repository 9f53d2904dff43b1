// Package app wires a workspace's configuration into ready-to-use use cases.
package app

import (
	"log/slog"
	"path/filepath"

	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/historystore"
	"github.com/Shan319/number-dna-analyze/internal/infra/logger"
	"github.com/Shan319/number-dna-analyze/internal/infra/sealer"
	"github.com/Shan319/number-dna-analyze/internal/infra/strokes"
	"github.com/Shan319/number-dna-analyze/internal/infra/workspacefinder"
	"github.com/Shan319/number-dna-analyze/internal/infra/yamlprofile"
	"github.com/Shan319/number-dna-analyze/internal/ports"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

// Workspace holds everything a surface needs to serve one workspace.
// History is nil when history is disabled in the config.
type Workspace struct {
	Root     string
	Config   domain.Config
	Strokes  ports.StrokeTable
	Profiles *yamlprofile.Loader
	Store    ports.HistoryStore

	Analyze *usecase.Analyze
	Batch   *usecase.Batch
	History *usecase.History

	log *slog.Logger
}

// Open loads numdna.yaml from root and builds the use cases.
func Open(root string, log *slog.Logger) (*Workspace, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return Build(root, cfg, log)
}

// Defaults builds a workspace-less setup: built-in config, no history and
// no stroke table.
func Defaults(log *slog.Logger) *Workspace {
	cfg := domain.DefaultConfig()
	cfg.History.Enabled = false

	ws, _ := Build("", cfg, log)
	return ws
}

// Build wires cfg without reading numdna.yaml. A missing stroke table is
// not an error: name input then fails on use.
func Build(root string, cfg domain.Config, log *slog.Logger) (*Workspace, error) {
	log = logger.OrDiscard(log)
	ws := &Workspace{
		Root:     root,
		Config:   cfg,
		Profiles: yamlprofile.NewLoader(yamlprofile.WithProfilesDir(cfg.Paths.ProfilesDir)),
		log:      log,
	}

	if root != "" && cfg.Strokes.Path != "" {
		table, err := strokes.Load(ws.path(cfg.Strokes.Path), cfg.Strokes.Encoding, log)
		switch {
		case err == nil:
			ws.Strokes = table
		case domain.IsKind(err, domain.KindNotFound):
			log.Warn("strokes.missing", "path", cfg.Strokes.Path)
		default:
			return nil, err
		}
	}

	if root != "" && cfg.History.Enabled {
		opts := []historystore.Option{
			historystore.WithIndex(true),
			historystore.WithLogger(log),
		}
		if cfg.History.Encrypt {
			box, err := sealer.LoadOrCreateKey(ws.path(cfg.History.KeyFile))
			if err != nil {
				return nil, err
			}
			opts = append(opts, historystore.WithSealer(box))
		}
		ws.Store = historystore.NewJSONStore(root, cfg, opts...)
		ws.History = usecase.NewHistory(ws.Store)
	}

	analyzeOpts := []usecase.AnalyzeOption{
		usecase.WithValidation(cfg.Input.Validate),
		usecase.WithAnalyzeLogger(log),
	}
	if ws.Store != nil {
		analyzeOpts = append(analyzeOpts, usecase.WithHistory(ws.Store))
	}
	ws.Analyze = usecase.NewAnalyze(ws.Strokes, analyzeOpts...)
	ws.Batch = usecase.NewBatch(ws.Profiles, ws.Analyze, log)

	return ws, nil
}

// Request builds an analyze request from the workspace defaults.
func (w *Workspace) Request(in domain.Input) usecase.AnalyzeRequest {
	return usecase.AnalyzeRequest{
		Input:    in,
		Generate: w.Config.GenerateRequest(),
		Seed:     w.Config.Generation.Seed,
		Save:     w.Config.History.Enabled,
	}
}

// ProfilePath resolves a profile name or path inside the workspace.
func (w *Workspace) ProfilePath(nameOrPath string) string {
	return w.Profiles.Resolve(w.Root, nameOrPath)
}

func (w *Workspace) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(w.Root, p)
}

func (w *Workspace) Logger() *slog.Logger { return w.log }
