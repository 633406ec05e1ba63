package app

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/showmore/internal/config"
	"github.com/marcus/showmore/internal/showmore"
)

// statusTTL is how long a status message stays visible.
const statusTTL = 2 * time.Second

// clearStatusMsg clears the status line if it is still the one with Seq.
type clearStatusMsg struct {
	Seq int
}

// ConfigReloadedMsg carries the attribute file after a change on disk.
type ConfigReloadedMsg struct {
	Config showmore.Config
	Err    error
}

// CopyResultMsg reports the outcome of a clipboard copy.
type CopyResultMsg struct {
	Err error
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

func copyText(text string) tea.Cmd {
	return func() tea.Msg {
		return CopyResultMsg{Err: clipboardWrite(text)}
	}
}

func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, err := w.Next()
		if errors.Is(err, config.ErrWatcherClosed) {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg, Err: err}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{Seq: seq}
	})
}
