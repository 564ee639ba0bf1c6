package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/gupio/tracker/internal/remote"
	"github.com/gupio/tracker/internal/store/jsonstore"
)

// Config tunes the simulated backend and the UI. All fields are optional;
// a missing file means pure defaults. The failure rate is a pointer so an
// explicit 0 (never fail) survives loading.
type Config struct {
	Storage     string    `yaml:"storage"`
	FailureRate *float64  `yaml:"failure_rate"`
	DebounceMs  int       `yaml:"debounce_ms"`
	Theme       string    `yaml:"theme"`
	LatencyMs   LatencyMs `yaml:"latency_ms"`
}

// LatencyMs holds per-operation artificial delays in milliseconds.
// Zero or missing values fall back to the client defaults.
type LatencyMs struct {
	List   int `yaml:"list"`
	Create int `yaml:"create"`
	Update int `yaml:"update"`
	Delete int `yaml:"delete"`
}

func Default() Config {
	p := remote.DefaultFailureRate
	return Config{
		Storage:     jsonstore.DefaultFileName,
		FailureRate: &p,
		DebounceMs:  300,
		Theme:       "classic",
	}
}

// Load reads a YAML config file. An empty path or a missing file yields the
// defaults; a malformed file is an error.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Storage == "" {
		cfg.Storage = jsonstore.DefaultFileName
	}
	if cfg.FailureRate == nil {
		p := remote.DefaultFailureRate
		cfg.FailureRate = &p
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = 300
	}
	if cfg.Theme == "" {
		cfg.Theme = "classic"
	}
	return cfg, nil
}

// Latency converts the configured delays, defaulting unset operations.
func (c Config) Latency() remote.Latency {
	l := remote.DefaultLatency()
	if c.LatencyMs.List > 0 {
		l.List = time.Duration(c.LatencyMs.List) * time.Millisecond
	}
	if c.LatencyMs.Create > 0 {
		l.Create = time.Duration(c.LatencyMs.Create) * time.Millisecond
	}
	if c.LatencyMs.Update > 0 {
		l.Update = time.Duration(c.LatencyMs.Update) * time.Millisecond
	}
	if c.LatencyMs.Delete > 0 {
		l.Delete = time.Duration(c.LatencyMs.Delete) * time.Millisecond
	}
	return l
}

// Debounce is the quiet window for live search input.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
