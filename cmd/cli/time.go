// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"github.com/spf13/cobra"
)

var timeCmd = &cobra.Command{
	Use:   "time {start|stop|summary}",
	Short: "Time tracking",
	Long:  `Time tracking backed by a timewarrior-compatible executable.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		action := ""
		if len(args) > 0 {
			action = args[0]
		}
		runCaptured(rt.Time(action))
	},
}
