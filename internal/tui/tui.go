// Package tui implements the interactive time.txt viewer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/timetxt/timetxt/internal/cli"
	"github.com/timetxt/timetxt/internal/stats"
	"github.com/timetxt/timetxt/internal/storage"
	"github.com/timetxt/timetxt/internal/timelog"
)

// Model is the bubbletea model for the log viewer.
type Model struct {
	path        string
	showElapsed bool

	log *timelog.TimeLog
	err error

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	keys   KeyMap
	styles Styles
}

// New creates a viewer for the log file at path.
func New(path string, showElapsed bool) Model {
	m := Model{
		path:        path,
		showElapsed: showElapsed,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
	}
	m.reload()
	return m
}

// Run starts the viewer and blocks until the user quits.
func Run(path string, showElapsed bool) error {
	p := tea.NewProgram(New(path, showElapsed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// reload re-reads and re-parses the log file.
func (m *Model) reload() {
	log, err := storage.LoadLog(m.path)
	if err != nil {
		m.log, m.err = nil, err
		return
	}
	m.log, m.err = log, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Title and status bar take one line each.
		contentHeight := msg.Height - 2
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			m.reload()
			m.viewport.SetContent(m.content())
			return m, nil

		case key.Matches(msg, m.keys.ToggleElapsed):
			m.showElapsed = !m.showElapsed
			m.viewport.SetContent(m.content())
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.path),
		m.viewport.View(),
		m.statusBar(),
	)
}

// content renders the styled log text shown inside the viewport.
func (m Model) content() string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	if m.log.Len() == 0 {
		return "No entries."
	}

	var b strings.Builder
	for _, d := range m.log.Dates() {
		b.WriteString(m.styles.Date.Render(d.Format(timelog.DateLayout)))
		b.WriteByte('\n')
		for _, e := range m.log.Entries[d] {
			b.WriteString(m.styles.Clock.Render(
				e.Start.Format(timelog.ClockLayout) + " " + e.End.Format(timelog.ClockLayout)))
			b.WriteByte(' ')
			b.WriteString(e.Description)
			if m.showElapsed {
				b.WriteByte(' ')
				b.WriteString(m.styles.Elapsed.Render("(" + cli.FormatElapsed(e.Elapsed()) + ")"))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// statusBar renders the bottom line with totals and key help.
func (m Model) statusBar() string {
	left := ""
	if m.err == nil {
		s := stats.Summarize(m.log)
		word := "entries"
		if s.EntryCount == 1 {
			word = "entry"
		}
		left = fmt.Sprintf("%d %s · %s total",
			s.EntryCount, word, cli.FormatElapsed(time.Duration(s.TotalMinutes)*time.Minute))
	}

	help := strings.Join([]string{
		m.styles.StatusKey.Render("e") + " elapsed",
		m.styles.StatusKey.Render("r") + " reload",
		m.styles.StatusKey.Render("q") + " quit",
	}, "  ")

	return m.styles.StatusBar.Render(left + "  " + help)
}
