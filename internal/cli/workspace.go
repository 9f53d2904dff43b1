package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shan319/number-dna-analyze/internal/app"
	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/infra/logger"
	"github.com/Shan319/number-dna-analyze/internal/infra/workspacefinder"
)

// openWorkspace locates and wires the workspace and starts file logging in
// it. With optional set, a missing workspace falls back to built-in defaults
// (no history, no stroke table) instead of failing.
func openWorkspace(g *globalFlags, optional bool) (*app.Workspace, func(), error) {
	noop := func() {}

	root, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		if optional && strings.TrimSpace(g.workspace) == "" && domain.IsKind(err, domain.KindNotFound) {
			return app.Defaults(nil), noop, nil
		}
		return nil, noop, err
	}

	cleanup := noop
	if closeLog, lerr := logger.Setup(logger.Config{Root: root, Debug: g.debug}); lerr == nil {
		cleanup = func() { _ = closeLog() }
	}

	ws, err := app.Open(root, logger.L())
	if err != nil {
		cleanup()
		return nil, noop, err
	}
	return ws, cleanup, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `numdna init`): %w", wd, err)
	}
	return root, nil
}

func requireHistory(ws *app.Workspace) error {
	if ws.History == nil {
		return &domain.OpError{
			Op:   "cli.history",
			Kind: domain.KindInvalidConfig,
			Path: ws.Root,
			Err:  fmt.Errorf("history is disabled for this workspace: %w", domain.ErrInvalidConfig),
		}
	}
	return nil
}
