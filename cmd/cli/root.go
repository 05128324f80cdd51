// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"personal-manager/internal/config"
	"personal-manager/internal/logger"
	"personal-manager/internal/router"
	"personal-manager/internal/runner"
)

var (
	statusColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
)

var (
	cfg config.Config
	rt  *router.Router
)

var rootCmd = &cobra.Command{
	Use:   "pm",
	Short: "Personal Manager - CLI task and project organizer",
	Long: `A personal productivity command shell.

Dispatches free-form shell commands, taskwarrior actions, and timewarrior
actions from one front end, rendered either as plain CLI output or inside
an interactive terminal UI (pm tui).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		rt = router.New(cfg, runner.NewExecRunner())
		return nil
	},
}

// RunCLI parses the invocation and executes exactly one action. A bare "pm"
// prints usage and exits 0 (cobra's default for a root command without Run).
func RunCLI() {
	logger.Init(false)

	// A user interrupt aborts the whole invocation, child process included.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
		os.Exit(130)
	}()

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Error("cli invocation failed", "error", err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(tuiCmd)
}
