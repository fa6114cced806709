// Package tui is an interactive browser for compatibility reports. It shows
// the fused report plus the per-branch detail views as tabs and reloads the
// analysis when the underlying chart files change on disk.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunastra/concord/internal/chartfile"
	"github.com/lunastra/concord/internal/report"
	"github.com/lunastra/concord/internal/ui"
)

// Tab indices.
const (
	tabReport = iota
	tabSynastry
	tabComposite
	tabGuna
	tabCount
)

var tabTitles = [tabCount]string{"Report", "Synastry", "Composite", "Guna"}

// LoadFunc produces a fresh analysis; it runs off the UI goroutine.
type LoadFunc func() (*report.Analysis, error)

// analysisMsg carries the result of a (re)load.
type analysisMsg struct {
	analysis *report.Analysis
	err      error
}

// chartChangedMsg signals a chart file changed on disk.
type chartChangedMsg struct{}

// Model is the bubbletea model for the report browser.
type Model struct {
	nameA, nameB string
	load         LoadFunc
	watcher      *chartfile.Watcher

	keys     KeyMap
	tab      int
	viewport viewport.Model
	ready    bool

	analysis *report.Analysis
	loadErr  error
	width    int
}

// New creates a report browser for two named charts. watcher may be nil, in
// which case only manual reload is available.
func New(nameA, nameB string, load LoadFunc, watcher *chartfile.Watcher) Model {
	return Model{
		nameA:   nameA,
		nameB:   nameB,
		load:    load,
		watcher: watcher,
		keys:    DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		an, err := m.load()
		return analysisMsg{analysis: an, err: err}
	}
}

func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.watcher.Changes; !ok {
			return nil
		}
		return chartChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			return m, m.loadCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		chrome := 3 // status bar + tab bar + footer
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
		m.refreshContent()
		return m, nil

	case analysisMsg:
		m.analysis = msg.analysis
		m.loadErr = msg.err
		m.refreshContent()
		return m, nil

	case chartChangedMsg:
		// Reload, then resume waiting for the next change.
		return m, tea.Batch(m.loadCmd(), m.waitForChange())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refreshContent re-renders the active tab into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.tabContent())
}

func (m Model) tabContent() string {
	if m.loadErr != nil {
		return styleError.Render(fmt.Sprintf("analysis failed: %v", m.loadErr))
	}
	if m.analysis == nil {
		return styleLoading.Render("computing analysis...")
	}

	var buf bytes.Buffer
	p := ui.NewWriter(&buf)
	switch m.tab {
	case tabReport:
		p.Report(m.analysis, m.nameA, m.nameB)
	case tabSynastry:
		p.Synastry(m.analysis.Synastry, m.nameA, m.nameB)
	case tabComposite:
		p.Composite(m.analysis.Composite, m.nameA, m.nameB)
	case tabGuna:
		if m.analysis.Guna == nil {
			return styleLoading.Render("guna milan unavailable for these charts")
		}
		p.Guna(m.analysis.Guna, m.nameA, m.nameB)
	}
	return buf.String()
}

func (m Model) View() string {
	if !m.ready {
		return styleLoading.Render("starting...")
	}
	return strings.Join([]string{
		m.statusBar(),
		m.tabBar(),
		m.viewport.View(),
		m.footer(),
	}, "\n")
}

func (m Model) statusBar() string {
	title := fmt.Sprintf("concord  %s ✶ %s", m.nameA, m.nameB)
	score := ""
	if m.analysis != nil && m.analysis.Report != nil {
		score = styleStatusScore.Render(fmt.Sprintf("  %.2f", m.analysis.Report.Overall))
	}
	return styleStatusBar.Width(m.width).Render(title + score)
}

func (m Model) tabBar() string {
	parts := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if i == m.tab {
			parts = append(parts, styleTabActive.Render(title))
		} else {
			parts = append(parts, styleTabInactive.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) footer() string {
	help := []string{
		m.keys.NextTab.Help().Key + " " + m.keys.NextTab.Help().Desc,
		m.keys.Up.Help().Key + "/" + m.keys.Down.Help().Key + " scroll",
		m.keys.Reload.Help().Key + " " + m.keys.Reload.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return styleFooter.Width(m.width).Render(strings.Join(help, "  ·  "))
}

// Run starts the TUI and blocks until the user quits.
func Run(nameA, nameB string, load LoadFunc, watcher *chartfile.Watcher) error {
	p := tea.NewProgram(New(nameA, nameB, load, watcher), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
