package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoad_RequiresBaseURL(t *testing.T) {
	t.Setenv("STATS_BASE_URL", "")

	if _, err := Load(zerolog.Nop()); err == nil {
		t.Error("expected an error without STATS_BASE_URL")
	}
}

func TestLoad_DefaultsAndTrimming(t *testing.T) {
	t.Setenv("STATS_BASE_URL", "https://stats.example.org/data/")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REFRESH_INTERVAL", "")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StatsBaseURL != "https://stats.example.org/data" {
		t.Errorf("base url not trimmed: %q", cfg.StatsBaseURL)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("port default: %q", cfg.ServerPort)
	}
	if cfg.RefreshInterval != 6*time.Hour {
		t.Errorf("refresh default: %v", cfg.RefreshInterval)
	}
}

func TestLoad_RefreshInterval(t *testing.T) {
	t.Setenv("STATS_BASE_URL", "https://stats.example.org")
	t.Setenv("REFRESH_INTERVAL", "90m")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RefreshInterval != 90*time.Minute {
		t.Errorf("refresh: %v", cfg.RefreshInterval)
	}

	t.Setenv("REFRESH_INTERVAL", "soon")
	if _, err := Load(zerolog.Nop()); err == nil {
		t.Error("expected an error for an unparseable interval")
	}
}
