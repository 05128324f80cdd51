// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package transcript renders one command execution into the text block shown
// to the user. Rendering is a pure function of (request, outcome), so the CLI
// and TUI surfaces cannot drift apart in what they display.
package transcript

import (
	"fmt"
	"strings"

	"personal-manager/internal/runner"
)

// Render produces the full transcript: a "$ <command>" header line followed
// by the body for the outcome. The request is the command as the user invoked
// it, not any internal shell-wrapped form.
func Render(req runner.Request, out runner.Outcome) string {
	return "$ " + req.String() + "\n" + Body(req, out)
}

// Body renders only the outcome portion of the transcript.
func Body(req runner.Request, out runner.Outcome) string {
	switch out.Kind {
	case runner.OutcomeSuccess:
		var b strings.Builder
		b.Write(out.Result.Stdout)
		if len(out.Result.Stderr) > 0 {
			b.WriteString("STDERR:\n")
			b.Write(out.Result.Stderr)
		}
		if b.Len() == 0 {
			return fmt.Sprintf("Command %s executed successfully (no output)", req.String())
		}
		return b.String()

	case runner.OutcomeProcessError:
		var b strings.Builder
		fmt.Fprintf(&b, "Command failed with exit code %d\n", out.Result.ExitCode)
		if len(out.Result.Stdout) > 0 {
			b.WriteString("STDOUT:\n")
			b.Write(out.Result.Stdout)
			b.WriteString("\n")
		}
		if len(out.Result.Stderr) > 0 {
			b.WriteString("STDERR:\n")
			b.Write(out.Result.Stderr)
		}
		return b.String()

	case runner.OutcomeNotFound:
		return "Command not found: " + out.Program

	case runner.OutcomeFailure:
		return "Error: " + out.Message
	}
	return ""
}
