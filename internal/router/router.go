// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package router maps logical user actions (shell, task, time) to concrete
// external commands or static stub notices, and drives the shared
// runner/transcript cycle for both front ends.
package router

import (
	"os/exec"
	"strings"

	"personal-manager/internal/config"
	"personal-manager/internal/runner"
	"personal-manager/internal/transcript"
)

// DecisionKind tags how an action resolves.
type DecisionKind int

const (
	// Execute: the action maps to an external command.
	Execute DecisionKind = iota
	// Stub: the action is a deliberate placeholder; the runner is never
	// invoked and Message is shown as-is.
	Stub
	// Unknown: the action is not recognized.
	Unknown
)

// Decision is the total resolution of one action: every action maps to
// exactly one kind.
type Decision struct {
	Kind DecisionKind

	// Request is the exec form handed to the runner (possibly shell-wrapped).
	Request runner.Request

	// Display is the command as the user invoked it, used for the transcript
	// header.
	Display runner.Request

	// Message is the notice for Stub and Unknown decisions.
	Message string
}

// Router resolves actions against the configured backends and executes them
// through a Runner.
type Router struct {
	cfg config.Config
	run runner.Runner

	// lookPath resolves shell executables; swappable in tests.
	lookPath func(string) (string, error)
}

func New(cfg config.Config, run runner.Runner) *Router {
	return &Router{cfg: cfg, run: run, lookPath: exec.LookPath}
}

// Shell resolves a free-form shell command. The tokens are joined and handed
// to an interactive shell with -c so pipes, globs, and builtins behave as the
// user expects. The display form stays the raw tokens.
func (r *Router) Shell(tokens []string) Decision {
	if len(tokens) == 0 {
		return Decision{Kind: Stub, Message: "Please enter a shell command"}
	}
	return Decision{
		Kind:    Execute,
		Request: runner.NewRequest(r.shellPath(), "-c", strings.Join(tokens, " ")),
		Display: runner.NewRequest(tokens...),
	}
}

// shellPath probes for the preferred shell, falling back deterministically.
// Probed per resolution; nothing is cached across invocations.
func (r *Router) shellPath() string {
	if path, err := r.lookPath(r.cfg.Shell); err == nil {
		return path
	}
	return r.cfg.ShellFallback
}

// Task resolves a task-tracking action.
func (r *Router) Task(action string) Decision {
	switch action {
	case "list":
		req := runner.NewRequest(r.cfg.TaskCommand, "list")
		return Decision{Kind: Execute, Request: req, Display: req}
	case "add":
		return Decision{Kind: Stub, Message: "Task add functionality - integrate with taskwarrior"}
	default:
		return Decision{Kind: Unknown, Message: "Unknown task action"}
	}
}

// Time resolves a time-tracking action.
func (r *Router) Time(action string) Decision {
	switch action {
	case "summary":
		req := runner.NewRequest(r.cfg.TimeCommand, "summary")
		return Decision{Kind: Execute, Request: req, Display: req}
	case "start":
		return Decision{Kind: Stub, Message: "Time start functionality - integrate with timewarrior"}
	case "stop":
		return Decision{Kind: Stub, Message: "Time stop functionality - integrate with timewarrior"}
	default:
		return Decision{Kind: Unknown, Message: "Unknown time action"}
	}
}

// Dispatch carries one decision through the runner and formatter. It returns
// the transcript (empty in Passthrough mode, where the child's bytes already
// reached the attached writers) and the process exit code for line mode.
//
// Exit codes: 0 for success, stubs, and unknown actions (no command ran),
// the subprocess's own code on a non-zero exit, 1 for unresolvable programs
// and unexpected failures.
func (r *Router) Dispatch(d Decision, mode runner.Mode) (string, int) {
	switch d.Kind {
	case Stub, Unknown:
		return d.Message, 0
	}

	out := r.run.Run(d.Request, mode)
	code := exitCode(out)

	if mode == runner.Passthrough {
		// No composition in binary mode; only launch problems need a notice.
		switch out.Kind {
		case runner.OutcomeNotFound, runner.OutcomeFailure:
			return transcript.Body(d.Display, out), code
		}
		return "", code
	}

	return transcript.Render(d.Display, out), code
}

func exitCode(out runner.Outcome) int {
	switch out.Kind {
	case runner.OutcomeSuccess:
		return 0
	case runner.OutcomeProcessError:
		return out.Result.ExitCode
	default:
		return 1
	}
}
