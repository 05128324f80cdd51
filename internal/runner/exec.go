// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// ExecRunner runs commands via os/exec. In Passthrough mode the child writes
// to Stdout/Stderr directly; in Capture mode both streams are buffered into
// the Result. Timeout of zero means the call waits indefinitely.
type ExecRunner struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Timeout time.Duration
}

// NewExecRunner returns a runner wired to the process's own stdout/stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(req Request, mode Mode) Outcome {
	if len(req.Argv) == 0 {
		return Outcome{Kind: OutcomeFailure, Message: "empty command request"}
	}

	ctx := context.Background()
	cancel := func() {}
	if r.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
	}
	defer cancel()

	cmd := exec.CommandContext(ctx, req.Argv[0], req.Argv[1:]...)

	var stdoutBuf, stderrBuf bytes.Buffer
	if mode == Passthrough {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	res := Result{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes()}

	if err == nil {
		return Outcome{Kind: OutcomeSuccess, Result: res}
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return Outcome{Kind: OutcomeNotFound, Program: req.Argv[0]}
	}

	if ctx.Err() == context.DeadlineExceeded {
		return Outcome{Kind: OutcomeFailure, Message: fmt.Sprintf("command timed out after %s", r.Timeout)}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && !status.Exited() {
			// Killed by a signal rather than exiting on its own.
			return Outcome{Kind: OutcomeFailure, Message: err.Error()}
		}
		res.ExitCode = exitErr.ExitCode()
		return Outcome{Kind: OutcomeProcessError, Result: res}
	}

	return Outcome{Kind: OutcomeFailure, Message: err.Error()}
}
