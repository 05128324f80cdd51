// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task {list|add}",
	Short: "Task management",
	Long:  `Task management backed by a taskwarrior-compatible executable.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		action := ""
		if len(args) > 0 {
			action = args[0]
		}
		runCaptured(rt.Task(action))
	},
}
