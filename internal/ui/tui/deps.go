package tui

import (
	"log/slog"

	"github.com/Shan319/number-dna-analyze/internal/app"
	"github.com/Shan319/number-dna-analyze/internal/ports"
)

type Deps struct {
	// Workspace is the wired workspace; built-in defaults when none was found.
	Workspace *app.Workspace

	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
