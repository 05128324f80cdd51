// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "pm")
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0640))
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeConfig(t, "task_command: td\n")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "td", cfg.TaskCommand)
	require.Equal(t, "timew", cfg.TimeCommand)
	require.Equal(t, "bash", cfg.Shell)
	require.Equal(t, "sh", cfg.ShellFallback)
}

func TestLoadFullFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeConfig(t, "task_command: td\ntime_command: tw\nshell: zsh\nshell_fallback: dash\n")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Config{
		TaskCommand:   "td",
		TimeCommand:   "tw",
		Shell:         "zsh",
		ShellFallback: "dash",
	}, cfg)
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeConfig(t, "task_command: [unclosed\n")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config file")
}

func TestEnsureConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, EnsureConfigDir())
	path, err := DefaultConfigPath()
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
