package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shan319/number-dna-analyze/internal/app"
	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

const analyzeTimeout = 30 * time.Second

var errNoHistory = &domain.OpError{
	Op:   "tui.history",
	Kind: domain.KindInvalidConfig,
	Err:  errors.New("history is disabled or no workspace is open"),
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		if err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false); err != nil {
			return initWorkspaceDoneMsg{root: root, err: err}
		}

		ws, err := app.Open(root, deps.Logger)
		return initWorkspaceDoneMsg{root: root, ws: ws, err: err}
	}
}

func cmdAnalyze(ws *app.Workspace, req usecase.AnalyzeRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
		defer cancel()

		res, err := ws.Analyze.Execute(ctx, req)
		return analyzeDoneMsg{res: res, err: err}
	}
}

func cmdLoadHistory(ws *app.Workspace) tea.Cmd {
	return func() tea.Msg {
		if ws == nil || ws.History == nil {
			return historyLoadedMsg{err: errNoHistory}
		}
		refs, err := ws.History.List()
		return historyLoadedMsg{refs: refs, err: err}
	}
}

func cmdLoadRecord(ws *app.Workspace, id string) tea.Cmd {
	return func() tea.Msg {
		if ws == nil || ws.History == nil {
			return recordLoadedMsg{err: errNoHistory}
		}
		rec, err := ws.History.Show(id)
		return recordLoadedMsg{rec: rec, err: err}
	}
}

func cmdDeleteRecord(ws *app.Workspace, id string) tea.Cmd {
	return func() tea.Msg {
		if ws == nil || ws.History == nil {
			return recordDeletedMsg{id: id, err: errNoHistory}
		}
		return recordDeletedMsg{id: id, err: ws.History.Delete(id)}
	}
}
