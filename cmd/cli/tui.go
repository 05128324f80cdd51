// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"github.com/spf13/cobra"

	"personal-manager/cmd/tui"
	"personal-manager/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Run: func(cmd *cobra.Command, args []string) {
		statusColor.Println("Launching Personal Manager TUI...")
		// Reconfigure logging so nothing writes to the terminal while the
		// TUI owns it.
		logger.Init(true)
		tui.RunTUI(rt)
	},
}
