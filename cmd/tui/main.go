// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"personal-manager/internal/router"
	"personal-manager/internal/ui"
)

// RunTUI initializes and runs the Bubble Tea TUI application around the
// shared router.
func RunTUI(rt *router.Router) {
	m := ui.InitialModel(rt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
