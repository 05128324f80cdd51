// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's commands.go file contains Bubble Tea commands that perform the
// blocking command execution off the update loop, marshalling the resulting
// transcript back as a message.

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"personal-manager/internal/logger"
	"personal-manager/internal/router"
	"personal-manager/internal/runner"
)

// dispatchCmd runs one router decision in Capture mode. The child process
// blocks this command's goroutine, not the UI event loop; the busy flag on
// the model keeps a second submission from starting in the meantime.
func dispatchCmd(rt *router.Router, d router.Decision) tea.Cmd {
	return func() tea.Msg {
		out, code := rt.Dispatch(d, runner.Capture)
		if code != 0 {
			logger.Warn("command finished with non-zero status",
				"command", d.Display.String(), "exit_code", code)
		}
		return transcriptMsg{transcript: out}
	}
}
