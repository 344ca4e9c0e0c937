// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points XDG_CONFIG_HOME at a temp dir and clears the env overrides
// so each test starts from defaults.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("VANNA_PORT", "")
	t.Setenv("VANNA_WORKERS", "")
	t.Setenv("VANNA_RPC_URL", "")
	t.Setenv("VANNA_MODEL", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", c.LogLevel, "info")
	}
	if c.Port != 50051 {
		t.Errorf("Port = %d, want 50051", c.Port)
	}
	if c.Workers != 10 {
		t.Errorf("Workers = %d, want 10", c.Workers)
	}
	if c.Engine.Model != "openai" {
		t.Errorf("Engine.Model = %q, want %q", c.Engine.Model, "openai")
	}
	if c.Engine.RPCURL != "" {
		t.Errorf("Engine.RPCURL = %q, want empty (engine default applies)", c.Engine.RPCURL)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := isolate(t)

	want := Config{
		LogLevel: "debug",
		Port:     6000,
		Workers:  4,
		Engine:   EngineConfig{RPCURL: "https://vanna.internal/rpc", Model: "chinook"},
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "vannabridge", "config.json"))
	if err != nil {
		t.Fatalf("stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config file mode = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("VANNA_PORT", "9090")
	t.Setenv("VANNA_WORKERS", "25")
	t.Setenv("VANNA_RPC_URL", "https://vanna.example/rpc")
	t.Setenv("VANNA_MODEL", "warehouse")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != 9090 {
		t.Errorf("Port = %d, want 9090", c.Port)
	}
	if c.Workers != 25 {
		t.Errorf("Workers = %d, want 25", c.Workers)
	}
	if c.Engine.RPCURL != "https://vanna.example/rpc" {
		t.Errorf("Engine.RPCURL = %q, want override", c.Engine.RPCURL)
	}
	if c.Engine.Model != "warehouse" {
		t.Errorf("Engine.Model = %q, want %q", c.Engine.Model, "warehouse")
	}
}

func TestEnvOverridesRejectNonNumeric(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "port must be numeric", key: "VANNA_PORT"},
		{name: "workers must be numeric", key: "VANNA_WORKERS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, "lots")

			if _, err := Load(); err == nil {
				t.Errorf("Load with %s=lots succeeded, want error", tt.key)
			}
		})
	}
}
