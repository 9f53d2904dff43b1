package tui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shan319/number-dna-analyze/internal/app"
	"github.com/Shan319/number-dna-analyze/internal/domain"
	"github.com/Shan319/number-dna-analyze/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenAnalyze
	screenHistory
	screenRecord
	screenFields
)

const (
	itemAnalyze = "Analyze"
	itemHistory = "History"
	itemFields  = "Fields"
	itemInit    = "Init Workspace"
	itemQuit    = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type recordItem struct{ ref domain.RecordRef }

func (r recordItem) Title() string {
	id := r.ref.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s  %s", id, r.ref.Kind)
}
func (r recordItem) Description() string { return r.ref.CreatedAt.Local().Format(time.DateTime) }
func (r recordItem) FilterValue() string { return r.ref.ID }

type model struct {
	theme Theme
	deps  Deps
	ws    *app.Workspace

	scr     screen
	menu    list.Model
	history list.Model
	input   textinput.Model
	kindIdx int

	running bool
	result  *usecase.AnalyzeResult
	record  *domain.Record
	toast   string
	width   int

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ws := deps.Workspace
	if ws == nil {
		ws = app.Defaults(deps.Logger)
	}

	in := textinput.New()
	in.Placeholder = "value to analyze"
	in.CharLimit = 64
	in.Width = 40

	hl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	hl.Title = "Saved analyses"
	hl.SetShowStatusBar(false)
	hl.SetShowHelp(false)

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		ws:      ws,
		scr:     screenHome,
		history: hl,
		input:   in,
		width:   80,
	}

	if ws.Root != "" {
		m.workspaceFound = true
		m.workspaceRoot = ws.Root
	}
	m.menu = newMenu(m.workspaceFound)
	return m
}

func newMenu(workspaceFound bool) list.Model {
	items := []list.Item{
		menuItem{itemAnalyze, "Analyze a name, ID, phone, birth date or custom value"},
		menuItem{itemHistory, "Browse saved analyses"},
		menuItem{itemFields, "The eight fields and their pairs"},
	}
	if !workspaceFound {
		items = append(items, menuItem{itemInit, "Create numdna.yaml, profiles and a stroke table here"})
	}
	items = append(items, menuItem{itemQuit, "Exit numdna"})

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "numdna"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

func (m model) kind() domain.InputKind {
	return domain.InputKinds[m.kindIdx%len(domain.InputKinds)]
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.history.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case analyzeDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.log().Warn("tui.analyze_failed", "err", msg.err)
			if len(msg.res.Analysis.Pairs) == 0 {
				return m, nil
			}
		} else {
			m.toast = ""
		}
		res := msg.res
		m.result = &res
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, recordItem{ref: r})
		}
		return m, m.history.SetItems(items)

	case recordLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		rec := msg.rec
		m.record = &rec
		m.scr = screenRecord
		return m, nil

	case recordDeletedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Deleted " + msg.id
		return m, cmdLoadHistory(m.ws)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.ws = msg.ws
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		m.menu = newMenu(true)
		m.toast = "Workspace created"
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenAnalyze:
			return m.updateAnalyze(msg)
		case screenHistory:
			return m.updateHistory(msg)
		case screenRecord, screenFields:
			switch msg.String() {
			case "esc", "b", "q":
				if m.scr == screenRecord {
					m.scr = screenHistory
				} else {
					m.scr = screenHome
				}
			}
			return m, nil
		}
	}

	if m.scr == screenAnalyze {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""
		switch it.title {
		case itemQuit:
			return m, tea.Quit
		case itemAnalyze:
			m.scr = screenAnalyze
			m.result = nil
			cmd := m.input.Focus()
			return m, cmd
		case itemHistory:
			m.scr = screenHistory
			return m, cmdLoadHistory(m.ws)
		case itemFields:
			m.scr = screenFields
			return m, nil
		case itemInit:
			wd, err := os.Getwd()
			if err != nil {
				m.toast = userMessage(err)
				return m, nil
			}
			return m, cmdInitWorkspaceHere(m.deps, wd)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateAnalyze(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.scr = screenHome
		return m, nil
	case "tab":
		m.kindIdx = (m.kindIdx + 1) % len(domain.InputKinds)
		return m, nil
	case "shift+tab":
		m.kindIdx = (m.kindIdx + len(domain.InputKinds) - 1) % len(domain.InputKinds)
		return m, nil
	case "enter":
		if m.running {
			return m, nil
		}
		m.running = true
		m.toast = ""
		req := m.ws.Request(domain.Input{Kind: m.kind(), Value: m.input.Value()})
		m.log().Info("tui.analyze", "kind", req.Input.Kind)
		return m, cmdAnalyze(m.ws, req)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil
	case "r":
		return m, cmdLoadHistory(m.ws)
	case "enter", "d":
		it, ok := m.history.SelectedItem().(recordItem)
		if !ok {
			return m, nil
		}
		if msg.String() == "d" {
			return m, cmdDeleteRecord(m.ws, it.ref.ID)
		}
		return m, cmdLoadRecord(m.ws, it.ref.ID)
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m model) log() *slog.Logger { return m.ws.Logger() }

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("numdna") + "\n" +
		m.theme.Subtitle.Render("digit-pair numerology analyzer") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Card.Render("⚠ No workspace found. History is off.\n\nChoose Init Workspace to create one here.")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	body, help := m.screenView()
	return wrap.Render(header + "\n" + banner + "\n\n" + body + toast + "\n" + m.theme.Help.Render(help))
}

func (m model) screenView() (body, help string) {
	inner := m.width - 12

	switch m.scr {
	case screenHome:
		return m.theme.Card.Render(m.menu.View()), "↑/↓ navigate • enter open • q quit"

	case screenAnalyze:
		var b []string
		for i, k := range domain.InputKinds {
			s := string(k)
			if i == m.kindIdx%len(domain.InputKinds) {
				s = m.theme.Title.Render("[" + s + "]")
			} else {
				s = m.theme.Help.Render(" " + s + " ")
			}
			b = append(b, s)
		}
		content := lipgloss.JoinHorizontal(lipgloss.Top, b...) + "\n\n" + m.input.View()
		if m.running {
			content += "\n\nAnalyzing…"
		} else if m.result != nil {
			content += "\n\n" + renderAnalysis(m.theme, m.result.Analysis, inner)
			if m.result.RecordID != "" {
				content += "\n\n" + m.theme.Help.Render("saved as "+m.result.RecordID)
			}
		}
		return m.theme.Card.Render(content), "tab/shift+tab kind • enter analyze • esc back"

	case screenHistory:
		return m.theme.Card.Render(m.history.View()), "enter show • d delete • r reload • esc back"

	case screenRecord:
		if m.record == nil {
			return "", "esc back"
		}
		title := m.theme.Title.Render(fmt.Sprintf("%s %s", m.record.Analysis.Input.Kind, m.record.Analysis.Input.Value))
		return m.theme.Card.Render(title + "\n\n" + renderAnalysis(m.theme, m.record.Analysis, inner)), "esc back"

	case screenFields:
		return m.theme.Card.Render(renderFields(m.theme)), "esc back"
	}
	return "unknown state", ""
}
