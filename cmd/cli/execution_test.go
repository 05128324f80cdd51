// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrintTranscriptKeepsCapturedBytes(t *testing.T) {
	var buf bytes.Buffer

	// A transcript ending in the child's own newline must not gain another.
	printTranscript(&buf, "$ echo hi\nhi\n")
	if diff := cmp.Diff("$ echo hi\nhi\n", buf.String()); diff != "" {
		t.Fatalf("transcript bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintTranscriptTerminatesBareNotices(t *testing.T) {
	var buf bytes.Buffer

	printTranscript(&buf, "Task add functionality - integrate with taskwarrior")
	want := "Task add functionality - integrate with taskwarrior\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("notice bytes mismatch (-want +got):\n%s", diff)
	}
}
