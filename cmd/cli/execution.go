// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"personal-manager/internal/logger"
	"personal-manager/internal/router"
	"personal-manager/internal/runner"
)

// runCaptured executes one decision in Capture mode with a spinner while the
// child runs, then prints the rendered transcript. Used for the backend
// actions whose output is composed, not streamed.
func runCaptured(d router.Decision) {
	var s *spinner.Spinner
	if d.Kind == router.Execute {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Color("cyan")
		s.Suffix = fmt.Sprintf(" Running '%s'...", d.Display.String())
		s.Start()
	}

	out, code := rt.Dispatch(d, runner.Capture)
	if s != nil {
		s.Stop()
	}

	finish(d, out, code)
}

// runPassthrough executes one decision in binary mode: the child's bytes go
// straight to stdout/stderr, escape sequences intact. Only launch problems
// produce a notice of our own.
func runPassthrough(d router.Decision) {
	notice, code := rt.Dispatch(d, runner.Passthrough)
	finish(d, notice, code)
}

// finish prints whatever text the dispatch produced and exits with the
// underlying command's code when it is non-zero.
func finish(d router.Decision, out string, code int) {
	if out != "" {
		if code == 0 {
			printTranscript(os.Stdout, out)
		} else {
			errorColor.Fprint(os.Stderr, out)
			if !strings.HasSuffix(out, "\n") {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	if code != 0 {
		logger.Warn("command finished with non-zero status",
			"command", d.Display.String(), "exit_code", code)
		os.Exit(code)
	}
}

// printTranscript writes a transcript byte-faithfully: captured output keeps
// its own trailing newline, and a newline is added only when the transcript
// ends without one (stub notices, not-found bodies).
func printTranscript(w io.Writer, out string) {
	fmt.Fprint(w, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(w)
	}
}
