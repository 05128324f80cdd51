// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"personal-manager/internal/config"
	"personal-manager/internal/runner"
)

// spyRunner records every request it receives and replies with a canned
// outcome, so routing can be observed without spawning processes.
type spyRunner struct {
	calls   []runner.Request
	outcome runner.Outcome
}

func (s *spyRunner) Run(req runner.Request, mode runner.Mode) runner.Outcome {
	s.calls = append(s.calls, req)
	return s.outcome
}

func newTestRouter(spy *spyRunner) *Router {
	rt := New(config.Default(), spy)
	rt.lookPath = func(name string) (string, error) {
		return "/bin/" + name, nil
	}
	return rt
}

func TestStubsNeverInvokeRunner(t *testing.T) {
	spy := &spyRunner{}
	rt := newTestRouter(spy)

	cases := []struct {
		decision Decision
		message  string
	}{
		{rt.Task("add"), "Task add functionality - integrate with taskwarrior"},
		{rt.Time("start"), "Time start functionality - integrate with timewarrior"},
		{rt.Time("stop"), "Time stop functionality - integrate with timewarrior"},
	}

	for _, tc := range cases {
		require.Equal(t, Stub, tc.decision.Kind)
		require.Equal(t, tc.message, tc.decision.Message)

		out, code := rt.Dispatch(tc.decision, runner.Capture)
		require.Equal(t, tc.message, out)
		require.Equal(t, 0, code)
	}

	require.Empty(t, spy.calls, "stub actions must not reach the runner")
}

func TestUnrecognizedActions(t *testing.T) {
	spy := &spyRunner{}
	rt := newTestRouter(spy)

	d := rt.Task("bogus")
	require.Equal(t, Unknown, d.Kind)
	require.Equal(t, "Unknown task action", d.Message)

	d = rt.Time("")
	require.Equal(t, Unknown, d.Kind)
	require.Equal(t, "Unknown time action", d.Message)

	// No command ran, so the notice exits clean.
	out, code := rt.Dispatch(d, runner.Capture)
	require.Equal(t, "Unknown time action", out)
	require.Equal(t, 0, code)

	out, code = rt.Dispatch(rt.Task("bogus"), runner.Capture)
	require.Equal(t, "Unknown task action", out)
	require.Equal(t, 0, code)

	require.Empty(t, spy.calls)
}

func TestTaskListResolution(t *testing.T) {
	rt := newTestRouter(&spyRunner{})

	d := rt.Task("list")
	require.Equal(t, Execute, d.Kind)
	require.Equal(t, []string{"task", "list"}, d.Request.Argv)
	require.Equal(t, d.Request, d.Display)
}

func TestTimeSummaryResolution(t *testing.T) {
	rt := newTestRouter(&spyRunner{})

	d := rt.Time("summary")
	require.Equal(t, Execute, d.Kind)
	require.Equal(t, []string{"timew", "summary"}, d.Request.Argv)
}

func TestBackendNamesComeFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TaskCommand = "mytask"
	cfg.TimeCommand = "mytimew"
	rt := New(cfg, &spyRunner{})

	require.Equal(t, []string{"mytask", "list"}, rt.Task("list").Request.Argv)
	require.Equal(t, []string{"mytimew", "summary"}, rt.Time("summary").Request.Argv)
}

func TestShellWrapsTokensForTheShell(t *testing.T) {
	rt := newTestRouter(&spyRunner{})

	d := rt.Shell([]string{"grep", "-r", "TODO", "|", "wc", "-l"})
	require.Equal(t, Execute, d.Kind)
	require.Equal(t, []string{"/bin/bash", "-c", "grep -r TODO | wc -l"}, d.Request.Argv)
	// The header shows the command as invoked, not the wrapped form.
	require.Equal(t, []string{"grep", "-r", "TODO", "|", "wc", "-l"}, d.Display.Argv)
}

func TestShellFallsBackWhenPreferredShellMissing(t *testing.T) {
	rt := New(config.Default(), &spyRunner{})
	rt.lookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	d := rt.Shell([]string{"echo", "hi"})
	require.Equal(t, "sh", d.Request.Argv[0])
}

func TestShellWithNoTokensIsANotice(t *testing.T) {
	spy := &spyRunner{}
	rt := newTestRouter(spy)

	d := rt.Shell(nil)
	require.Equal(t, Stub, d.Kind)
	require.Equal(t, "Please enter a shell command", d.Message)
	require.Empty(t, spy.calls)
}

func TestDispatchRendersCapturedTranscript(t *testing.T) {
	spy := &spyRunner{outcome: runner.Outcome{
		Kind:   runner.OutcomeSuccess,
		Result: runner.Result{Stdout: []byte("done\n")},
	}}
	rt := newTestRouter(spy)

	out, code := rt.Dispatch(rt.Task("list"), runner.Capture)
	require.Equal(t, "$ task list\ndone\n", out)
	require.Equal(t, 0, code)
	require.Len(t, spy.calls, 1)
}

func TestDispatchPropagatesExitCode(t *testing.T) {
	spy := &spyRunner{outcome: runner.Outcome{
		Kind:   runner.OutcomeProcessError,
		Result: runner.Result{ExitCode: 3},
	}}
	rt := newTestRouter(spy)

	_, code := rt.Dispatch(rt.Task("list"), runner.Capture)
	require.Equal(t, 3, code)
}

func TestDispatchPassthroughStaysSilentOnSuccess(t *testing.T) {
	spy := &spyRunner{outcome: runner.Outcome{Kind: runner.OutcomeSuccess}}
	rt := newTestRouter(spy)

	out, code := rt.Dispatch(rt.Shell([]string{"ls"}), runner.Passthrough)
	require.Empty(t, out, "passthrough output goes to the writers, not the transcript")
	require.Equal(t, 0, code)
}

func TestDispatchPassthroughReportsLaunchProblems(t *testing.T) {
	spy := &spyRunner{outcome: runner.Outcome{
		Kind:    runner.OutcomeNotFound,
		Program: "definitely-not-a-real-binary-xyz",
	}}
	rt := newTestRouter(spy)

	out, code := rt.Dispatch(rt.Shell([]string{"definitely-not-a-real-binary-xyz"}), runner.Passthrough)
	require.Equal(t, "Command not found: definitely-not-a-real-binary-xyz", out)
	require.Equal(t, 1, code)
}
