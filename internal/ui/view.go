// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Personal Manager"))
	b.WriteString("\n\n")

	left := m.renderMenu()
	right := m.renderOutputPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m model) renderMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Menu"))
	b.WriteString("\n")
	for i, entry := range menuEntries {
		cursor := "  "
		if m.cursor == i && !m.input.Focused() {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + entry.label + "\n")
	}
	return lipgloss.NewStyle().Width(menuWidth).Render(b.String())
}

func (m model) renderOutputPane() string {
	var b strings.Builder

	if m.shellVisible {
		b.WriteString(titleStyle.Render("Shell Command Input"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Output"))
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spin.View())
		b.WriteString(statusStyle.Render("Running..."))
		b.WriteString("\n")
	}
	b.WriteString(outputBorderStyle.Render(m.viewport.View()))
	return b.String()
}

func (m model) renderFooter() string {
	bindings := []struct{ k, desc string }{
		{m.keymap.Up.Help().Key, m.keymap.Up.Help().Desc},
		{m.keymap.Down.Help().Key, m.keymap.Down.Help().Desc},
		{m.keymap.Enter.Help().Key, m.keymap.Enter.Help().Desc},
		{m.keymap.Esc.Help().Key, m.keymap.Esc.Help().Desc},
		{m.keymap.Clear.Help().Key, m.keymap.Clear.Help().Desc},
		{m.keymap.Quit.Help().Key, m.keymap.Quit.Help().Desc},
	}

	parts := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		parts = append(parts, footerKeyStyle.Render(bind.k)+" "+footerDescStyle.Render(bind.desc))
	}
	return footerStyle.Render(strings.Join(parts, footerSeparatorStyle.Render(" | ")))
}
