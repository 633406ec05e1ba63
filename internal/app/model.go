package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/showmore/internal/config"
	"github.com/marcus/showmore/internal/logger"
	"github.com/marcus/showmore/internal/showmore"
	"github.com/marcus/showmore/internal/styles"
	"github.com/marcus/showmore/internal/ui"
)

// viewTop is the screen row of the widget's first line: title + blank line.
const viewTop = 2

// Options configures the program model.
type Options struct {
	Title   string
	Width   int             // Fixed wrap width; 0 follows the terminal
	Watcher *config.Watcher // Optional attribute file watcher

	// Override is applied to every reloaded attribute file before it reaches
	// the controller, so command line flags keep winning.
	Override func(showmore.Config) showmore.Config
}

// Model hosts a single ShowMoreView.
type Model struct {
	controller *showmore.Controller
	view       *ui.ShowMoreView
	keys       KeyMap
	help       help.Model
	watcher    *config.Watcher
	override   func(showmore.Config) showmore.Config

	title      string
	fixedWidth int
	width      int
	height     int

	status     string
	statusWarn bool
	statusSeq  int
}

// New creates the model and registers it as c's observer.
func New(c *showmore.Controller, opts Options) *Model {
	m := &Model{
		controller: c,
		view:       ui.NewShowMoreView(c, opts.Width),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		watcher:    opts.Watcher,
		override:   opts.Override,
		title:      opts.Title,
		fixedWidth: opts.Width,
	}
	m.view.SetOrigin(0, viewTop)
	c.SetObserver(m)
	return m
}

// OnClicked implements showmore.Observer.
func (m *Model) OnClicked() {
	m.setStatus("text clicked", false)
}

// OnLongClicked implements showmore.Observer.
func (m *Model) OnLongClicked() {
	m.setStatus("long press", false)
}

// Status returns the current status line text.
func (m *Model) Status() string { return m.status }

func (m *Model) setStatus(s string, warn bool) {
	m.status = s
	m.statusWarn = warn
	m.statusSeq++
}

// Init starts the attribute watcher, if any.
func (m *Model) Init() tea.Cmd {
	return waitForConfig(m.watcher)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.fixedWidth == 0 {
			m.view.Width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		seq := m.statusSeq
		cmd := m.view.HandleMouse(msg)
		return m, tea.Batch(cmd, m.statusCmd(seq))

	case ui.LongPressMsg:
		seq := m.statusSeq
		m.view.HandleLongPress(msg)
		return m, m.statusCmd(seq)

	case ConfigReloadedMsg:
		if msg.Err != nil {
			logger.Warn("keeping previous attributes", "error", msg.Err)
			m.setStatus("attribute file invalid: "+msg.Err.Error(), true)
		} else {
			cfg := msg.Config
			if m.override != nil {
				cfg = m.override(cfg)
			}
			m.controller.SetConfiguration(cfg)
			m.setStatus("attributes reloaded", false)
		}
		return m, tea.Batch(waitForConfig(m.watcher), clearStatusAfter(m.statusSeq))

	case CopyResultMsg:
		if msg.Err != nil {
			logger.Error("copy to clipboard failed", "error", msg.Err)
			m.setStatus("failed to copy text", true)
		} else {
			m.setStatus("text copied to clipboard", false)
		}
		return m, clearStatusAfter(m.statusSeq)

	case clearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.statusWarn = false
		}
		return m, nil
	}
	return m, nil
}

// statusCmd schedules clearing the status if it changed since seq.
func (m *Model) statusCmd(seq int) tea.Cmd {
	if m.statusSeq == seq {
		return nil
	}
	return clearStatusAfter(m.statusSeq)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Copy):
		return copyText(m.controller.OriginalText())
	}

	if action, handled := m.view.HandleKey(msg); handled {
		logger.Debug("view key", "action", action, "expanded", m.controller.IsExpanded())
	}
	return nil
}

// View renders the program.
func (m *Model) View() string {
	var sb strings.Builder

	title := m.title
	if title == "" {
		title = "showmore"
	}
	if m.width > 0 {
		title = ui.FitWidth(title, m.width)
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n\n")

	sb.WriteString(m.view.Render())
	sb.WriteString("\n\n")

	state := "collapsed"
	if m.controller.IsExpanded() {
		state = "expanded"
	}
	sb.WriteString(styles.Muted.Render(fmt.Sprintf("%s · %d chars", state, showmore.RuneLen(m.controller.OriginalText()))))
	if m.status != "" {
		st := styles.StatusInfo
		if m.statusWarn {
			st = styles.StatusWarn
		}
		sb.WriteString("  ")
		sb.WriteString(st.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}
