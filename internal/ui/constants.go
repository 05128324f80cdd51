// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// menuWidth is the fixed width of the left menu pane.
const menuWidth = 22

type menuAction int

const (
	actionShellInput menuAction = iota
	actionTaskList
	actionTaskAdd
	actionTimeSummary
	actionTimeStart
	actionTimeStop
)

type menuEntry struct {
	label  string
	action menuAction
}

var menuEntries = []menuEntry{
	{"Shell Commands", actionShellInput},
	{"Task List", actionTaskList},
	{"Add Task", actionTaskAdd},
	{"Time Summary", actionTimeSummary},
	{"Start Time", actionTimeStart},
	{"Stop Time", actionTimeStop},
}
