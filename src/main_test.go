package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"elevsim/src/config"
)

func TestRunWritesSummaryAndClosesLog(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	cfg := config.Default()
	cfg.EpisodeLength = 20
	path := filepath.Join(t.TempDir(), "sim.log")
	if err := run(cfg, 2, "info", path); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(content), "Episode summary"); n != 2 {
		t.Errorf("Expected 2 episode summaries, was %d", n)
	}
}

func TestRunReturnsSetupErrors(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	if err := run(config.Default(), 1, "loud", ""); err == nil {
		t.Errorf("Expected an error for an unknown log level")
	}

	cfg := config.Default()
	cfg.NumElevators = 0
	path := filepath.Join(t.TempDir(), "sim.log")
	if err := run(cfg, 1, "info", path); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, was %v", err)
	}
}
