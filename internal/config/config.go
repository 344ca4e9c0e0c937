// Package config loads and stores service configuration in the XDG config dir.
// Only non-secret settings are kept here; the Vanna API key and the optional
// validation DSN live in the OS keychain or the process environment.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"vannabridge/service/internal/xdg"
)

// Config holds non-sensitive service settings.
type Config struct {
	LogLevel string       `json:"log_level"`
	Port     int          `json:"port"`
	Workers  int          `json:"workers"`
	Engine   EngineConfig `json:"engine"`
}

// EngineConfig holds Vanna engine settings.
type EngineConfig struct {
	RPCURL string `json:"rpc_url"`
	Model  string `json:"model"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// defaults returns the built-in configuration used when no file exists.
func defaults() Config {
	return Config{
		LogLevel: "info",
		Port:     50051,
		Workers:  10,
		Engine:   EngineConfig{Model: "openai"}, // RPC URL defaults inside the engine client
	}
}

// Load reads configuration; missing file returns defaults. Environment
// variables (VANNA_PORT, VANNA_WORKERS, VANNA_RPC_URL, VANNA_MODEL) override
// whatever the file provides.
func Load() (Config, error) {
	c := defaults()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults stand (API key is resolved from env/keychain, never from file)
	default:
		return c, err
	}
	if err := applyEnv(&c); err != nil {
		return c, err
	}
	return c, nil
}

// applyEnv overlays environment overrides onto c.
func applyEnv(c *Config) error {
	if v := strings.TrimSpace(os.Getenv("VANNA_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("VANNA_PORT must be a number")
		}
		c.Port = port
	}
	if v := strings.TrimSpace(os.Getenv("VANNA_WORKERS")); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("VANNA_WORKERS must be a number")
		}
		c.Workers = workers
	}
	if v := strings.TrimSpace(os.Getenv("VANNA_RPC_URL")); v != "" {
		c.Engine.RPCURL = v
	}
	if v := strings.TrimSpace(os.Getenv("VANNA_MODEL")); v != "" {
		c.Engine.Model = v
	}
	return nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
