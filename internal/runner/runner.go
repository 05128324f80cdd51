// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package runner executes external commands and reports their outcome.
// It is the single execution path shared by the CLI and TUI front ends.
package runner

import "strings"

// Request is an external command: the program name followed by its arguments.
// It must be non-empty; Argv[0] is the program.
type Request struct {
	Argv []string
}

// NewRequest builds a Request from the given tokens.
func NewRequest(argv ...string) Request {
	return Request{Argv: argv}
}

// Program returns the program name, or "" for an empty request.
func (r Request) Program() string {
	if len(r.Argv) == 0 {
		return ""
	}
	return r.Argv[0]
}

// String returns the space-joined command line as the user invoked it.
func (r Request) String() string {
	return strings.Join(r.Argv, " ")
}

// Result holds what a finished process produced. It is created once per
// execution attempt and never modified afterwards.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// OutcomeKind tags the variant of an Outcome.
type OutcomeKind int

const (
	// OutcomeSuccess: the process ran and exited zero.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeProcessError: the process ran and exited non-zero. This is a
	// normal outcome reported to the user, not a fault.
	OutcomeProcessError
	// OutcomeNotFound: the program could not be resolved to an executable.
	OutcomeNotFound
	// OutcomeFailure: launching or waiting on the process failed for any
	// other reason (I/O error, permission denied, signal termination).
	OutcomeFailure
)

// Outcome is the tagged result of one execution attempt. Exactly one variant
// is populated: Result for Success/ProcessError, Program for NotFound,
// Message for Failure.
type Outcome struct {
	Kind    OutcomeKind
	Result  Result
	Program string
	Message string
}

// Mode selects how the child's output streams are handled.
type Mode int

const (
	// Capture buffers stdout and stderr fully into the Result, byte-exact.
	Capture Mode = iota
	// Passthrough copies raw bytes straight to the attached writers with no
	// decoding or composition, preserving terminal escape sequences. The
	// Result carries only the exit code.
	Passthrough
)

// Runner executes one external command synchronously. The call blocks the
// invoking goroutine until the child exits.
type Runner interface {
	Run(req Request, mode Mode) Outcome
}
