package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/huddle-sh/huddle/internal/models"
)

// Focus targets.
const (
	focusList = iota
	focusView
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	// Data
	projects []models.ProjectEntry
	entries  []models.StandupEntry

	// UI state
	selected     int
	focusedPanel int
	showHelp     bool
	width        int
	height       int

	// Report view
	viewport viewport.Model
	rendered map[string]string // project -> glamour output

	// Status display
	err       error
	statusMsg string
}

// NewModel creates the initial TUI model.
func NewModel(projects []models.ProjectEntry) Model {
	vp := viewport.New(80, 24)
	return Model{
		projects: projects,
		viewport: vp,
		rendered: make(map[string]string),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return loadEntriesCmd(m.projects)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.viewWidth() - 2
		m.viewport.Height = m.panelHeight() - 2
		// Rendered output is wrapped to the old width; rebuild it
		m.rendered = make(map[string]string)
		return m, m.renderSelected()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case entriesLoadedMsg:
		m.entries = msg.entries
		if m.selected >= len(m.entries) {
			m.selected = len(m.entries) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.err = nil
		return m, m.renderSelected()

	case reportRenderedMsg:
		m.rendered[msg.project] = msg.rendered
		if e := m.selectedEntry(); e != nil && e.Project == msg.project {
			m.viewport.SetContent(msg.rendered)
			m.viewport.GotoTop()
		}
		return m, nil

	case dashboardWrittenMsg:
		if msg.written {
			m.statusMsg = "Dashboard written: " + msg.path
		} else {
			m.statusMsg = "Dashboard unchanged"
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear transient status on any key
	m.statusMsg = ""

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, globalKeys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, globalKeys.Tab):
		if m.focusedPanel == focusList {
			m.focusedPanel = focusView
		} else {
			m.focusedPanel = focusList
		}
		return m, nil

	case key.Matches(msg, globalKeys.Reload):
		return m, loadEntriesCmd(m.projects)

	case key.Matches(msg, globalKeys.Generate):
		if len(m.entries) > 0 {
			return m, writeDashboardCmd(m.entries)
		}
		return m, nil
	}

	if m.focusedPanel == focusList {
		switch {
		case key.Matches(msg, listKeys.Up):
			if m.selected > 0 {
				m.selected--
				return m, m.renderSelected()
			}
		case key.Matches(msg, listKeys.Down):
			if m.selected < len(m.entries)-1 {
				m.selected++
				return m, m.renderSelected()
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, viewKeys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, viewKeys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, viewKeys.PageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, viewKeys.PageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, viewKeys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, viewKeys.Bottom):
		m.viewport.GotoBottom()
	}

	return m, nil
}

// renderSelected kicks off glamour rendering for the selected entry, using
// the cache when the width hasn't changed.
func (m *Model) renderSelected() tea.Cmd {
	entry := m.selectedEntry()
	if entry == nil {
		return nil
	}

	if cached, ok := m.rendered[entry.Project]; ok {
		m.viewport.SetContent(cached)
		m.viewport.GotoTop()
		return nil
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	return renderReportCmd(*entry, width)
}

func (m *Model) selectedEntry() *models.StandupEntry {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return nil
	}
	return &m.entries[m.selected]
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := headerStyle.Render(" Huddle · Stand-up Dashboard")

	listPanel := m.renderProjectList()
	viewPanel := m.renderReportView()
	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, viewPanel)

	status := renderStatusBar(&m, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, panels, status)
}

// Layout helpers.

func (m Model) listWidth() int {
	w := m.width * 35 / 100
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) viewWidth() int {
	return m.width - m.listWidth()
}

func (m Model) panelHeight() int {
	// Header + status bar
	return m.height - 2
}
