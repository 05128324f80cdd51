// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:     "shell <command> [args...]",
	Short:   "Execute shell commands",
	Example: "  pm shell ls -la\n  pm shell 'grep -r TODO | wc -l'",
	// Everything after "shell" belongs to the user's command, flags included.
	DisableFlagParsing: true,
	Args:               cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPassthrough(rt.Shell(args))
	},
}
