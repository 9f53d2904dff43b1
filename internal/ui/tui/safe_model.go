package tui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shan319/number-dna-analyze/internal/infra/logger"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// After a panic in Update the model is back on the home screen with a toast.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	return safeModel{m: m, log: logger.OrDiscard(log)}
}

var _ tea.Model = safeModel{}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.report("update", r)

		s.m.scr = screenHome
		s.m.running = false
		s.m.toast = panicToast
		next, cmd = s, nil
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

func (s safeModel) report(where string, r any) {
	s.log.Error("tui.panic",
		"where", where,
		"screen", s.m.scr,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}
