// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"personal-manager/internal/router"
)

type model struct {
	rt     *router.Router
	keymap KeyMap

	cursor       int  // selected menu entry
	shellVisible bool // shell input shown (orthogonal to the execution cycle)
	busy         bool // a command is in flight; no second submission may start

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	output string // the single displayed transcript

	ready         bool
	width, height int
}

// InitialModel builds the starting TUI state around the shared router.
func InitialModel(rt *router.Router) model {
	ti := textinput.New()
	ti.Placeholder = "Enter shell command..."
	ti.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	return model{
		rt:     rt,
		keymap: DefaultKeyMap,
		input:  ti,
		spin:   sp,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case transcriptMsg:
		m.busy = false
		m.output = msg.transcript
		m.viewport.SetContent(m.output)
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.input.Focused() {
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Esc):
			m.input.Blur()
			m.shellVisible = false
			return m, nil
		case key.Matches(msg, m.keymap.Enter):
			return m.submitShell()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Enter):
		return m.selectEntry()

	case key.Matches(msg, m.keymap.Clear):
		m.output = ""
		m.viewport.SetContent("")

	case key.Matches(msg, m.keymap.Esc):
		m.shellVisible = false

	default:
		// Remaining keys scroll the output region.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// selectEntry activates the highlighted menu entry. Shell opens the input;
// everything else starts one router cycle.
func (m model) selectEntry() (tea.Model, tea.Cmd) {
	entry := menuEntries[m.cursor]

	if entry.action == actionShellInput {
		m.shellVisible = true
		m.input.Focus()
		return m, textinput.Blink
	}

	if m.busy {
		return m, nil
	}

	var d router.Decision
	switch entry.action {
	case actionTaskList:
		d = m.rt.Task("list")
	case actionTaskAdd:
		d = m.rt.Task("add")
	case actionTimeSummary:
		d = m.rt.Time("summary")
	case actionTimeStart:
		d = m.rt.Time("start")
	case actionTimeStop:
		d = m.rt.Time("stop")
	}

	return m.startDispatch(d)
}

// submitShell runs the typed shell command through the router.
func (m model) submitShell() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	tokens := strings.Fields(m.input.Value())
	return m.startDispatch(m.rt.Shell(tokens))
}

// startDispatch sets the busy flag and kicks off the execution cycle.
// The flag stays set until the transcript message comes back.
func (m model) startDispatch(d router.Decision) (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(dispatchCmd(m.rt, d), m.spin.Tick)
}

func (m *model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	vpWidth := m.width - menuWidth - 4 // border and gap
	if vpWidth < 10 {
		vpWidth = 10
	}
	vpHeight := m.height - 8 // header, titles, input, footer
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.viewport.SetContent(m.output)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
}
