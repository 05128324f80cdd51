// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration: which external backends
// the router invokes and which interactive shell wraps free-form commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level application configuration.
type Config struct {
	// TaskCommand is the task-tracking executable (taskwarrior-compatible).
	TaskCommand string `yaml:"task_command,omitempty"`

	// TimeCommand is the time-tracking executable (timewarrior-compatible).
	TimeCommand string `yaml:"time_command,omitempty"`

	// Shell is the preferred interactive shell for free-form commands.
	Shell string `yaml:"shell,omitempty"`

	// ShellFallback is used when Shell cannot be resolved on this system.
	ShellFallback string `yaml:"shell_fallback,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		TaskCommand:   "task",
		TimeCommand:   "timew",
		Shell:         "bash",
		ShellFallback: "sh",
	}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "pm", "config.yaml"), nil
}

// Load reads the config file, filling any missing fields with defaults.
// A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	def := Default()
	if cfg.TaskCommand == "" {
		cfg.TaskCommand = def.TaskCommand
	}
	if cfg.TimeCommand == "" {
		cfg.TimeCommand = def.TimeCommand
	}
	if cfg.Shell == "" {
		cfg.Shell = def.Shell
	}
	if cfg.ShellFallback == "" {
		cfg.ShellFallback = def.ShellFallback
	}

	return cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}
