package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/tracker"
	"github.com/Cosmos506/Gamification-life/internal/ui"
)

type pane int

const (
	paneActions pane = iota
	paneBadges
)

type boardModel struct {
	ctx context.Context
	svc *tracker.Service

	width  int
	height int

	report  *tracker.Report
	actions []engine.Action

	pane         pane
	selected     int
	onlyUnlocked bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	report  *tracker.Report
	actions []engine.Action
	err     error
}

type loggedMsg struct {
	entry *engine.Entry
	err   error
}

func newBoardModel(ctx context.Context, svc *tracker.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Chargement…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		rep, err := m.svc.Report(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		actions, err := m.svc.ListActions(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{report: rep, actions: actions}
	}
}

func (m boardModel) logCmd(actionID string) tea.Cmd {
	return func() tea.Msg {
		e, err := m.svc.AddEntry(m.ctx, tracker.EntryInput{ActionID: actionID})
		return loggedMsg{entry: e, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Échec du chargement : " + msg.err.Error()
			return m, nil
		}
		m.report = msg.report
		m.actions = msg.actions
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Actualisé à %s.", time.Now().Format("15:04:05"))
		return m, nil
	case loggedMsg:
		if msg.err != nil {
			m.lastLog = "Échec : " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s : +%d XP (%s)", msg.entry.Label, msg.entry.Points, msg.entry.Date)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Actualisation…"
			return m, m.loadCmd()
		case "tab":
			if m.pane == paneActions {
				m.pane = paneBadges
			} else {
				m.pane = paneActions
			}
			m.selected = 0
			return m, nil
		case "u":
			m.onlyUnlocked = !m.onlyUnlocked
			m.clampSelection()
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.pane != paneActions || m.selected >= len(m.actions) {
				return m, nil
			}
			a := m.actions[m.selected]
			m.lastLog = fmt.Sprintf("Enregistrement de %s…", a.Label)
			return m, m.logCmd(a.ID)
		}
	}
	return m, nil
}

func (m boardModel) visibleBadges() []engine.BadgeResult {
	if m.report == nil {
		return nil
	}
	if !m.onlyUnlocked {
		return m.report.Badges
	}
	var out []engine.BadgeResult
	for _, b := range m.report.Badges {
		if b.Unlocked {
			out = append(out, b)
		}
	}
	return out
}

func (m boardModel) rowCount() int {
	if m.pane == paneActions {
		return len(m.actions)
	}
	return len(m.visibleBadges())
}

func (m *boardModel) clampSelection() {
	if n := m.rowCount(); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Erreur : " + m.err.Error() + "\n\nAppuyez sur q pour quitter.\n"
	}

	sidebar := m.renderSidebar()
	main := m.renderMain()

	leftW := 34
	if m.width > 0 {
		if maxLeft := m.width / 2; maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	left := lipgloss.NewStyle().Width(leftW).Render(sidebar)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", main)

	return m.renderHeader() + "\n\n" + body + "\n\n" + m.lastLog + "\n"
}

func (m boardModel) renderHeader() string {
	if m.report == nil {
		return "Vie Gamifiée | chargement…"
	}
	p := m.report.Progression
	return fmt.Sprintf("Vie Gamifiée | Niveau %d · %s | XP %d %s %d/%d | Badges %d/%d",
		p.Level, p.Title, p.TotalXP,
		ui.ProgressBar(p.ProgressFraction, 24), p.XPInLevel, p.XPForNext,
		m.report.Unlocked, len(m.report.Badges))
}

func (m boardModel) renderSidebar() string {
	lines := []string{ui.PanelTitle.Render("XP des 14 derniers jours")}
	if m.report == nil || len(m.report.Progression.Chart) == 0 {
		lines = append(lines, "(aucune donnée)")
	} else {
		lines = append(lines, ui.ChartLines(m.report.Progression.Chart, 16)...)
	}
	lines = append(lines,
		"",
		"Touches",
		"- ↑/↓ ou j/k : déplacer",
		"- entrée : enregistrer l'action",
		"- tab : actions / badges",
		"- u : badges débloqués",
		"- r : actualiser",
		"- q : quitter",
	)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading && m.report == nil {
		return "Chargement…"
	}
	var out []string
	switch m.pane {
	case paneActions:
		out = append(out, ui.PanelTitle.Render("Actions"))
		if len(m.actions) == 0 {
			out = append(out, "(aucune action)")
		}
		for i, a := range m.actions {
			out = append(out, cursor(i == m.selected)+fmt.Sprintf("%s (+%d XP)", a.Label, a.Points))
		}
	case paneBadges:
		badges := m.visibleBadges()
		out = append(out, ui.PanelTitle.Render("Badges"))
		if len(badges) == 0 {
			out = append(out, "(aucun badge)")
		}
		for i, b := range badges {
			out = append(out, cursor(i == m.selected)+ui.BadgeLine(b))
		}
	}
	return strings.Join(out, "\n")
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
