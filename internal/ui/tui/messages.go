package tui

import (
	"github.com/Shan319/number-dna-analyze/internal/app"
	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

type initWorkspaceDoneMsg struct {
	root string
	ws   *app.Workspace
	err  error
}

type analyzeDoneMsg struct {
	res usecase.AnalyzeResult
	err error
}

type historyLoadedMsg struct {
	refs []domain.RecordRef
	err  error
}

type recordLoadedMsg struct {
	rec domain.Record
	err error
}

type recordDeletedMsg struct {
	id  string
	err error
}
