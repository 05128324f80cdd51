// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's messages.go file defines the message types used in the Bubble
// Tea Model-View-Update architecture.

package ui

// transcriptMsg delivers the rendered transcript of a finished command cycle.
// Receiving it clears the busy flag; the output region holds at most one
// transcript at a time, overwritten on each new command.
type transcriptMsg struct {
	transcript string
}
