package config

import (
	"testing"
	"time"

	"github.com/matst80/slask-card/pkg/card"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.Timeouts().Shutdown != 15*time.Second {
		t.Errorf("Expected 15s shutdown, got %v", cfg.Server.Timeouts().Shutdown)
	}
	if cfg.Card.CardOptions().MediaPrefix != card.DefaultMediaPrefix {
		t.Errorf("Expected default media prefix, got %s", cfg.Card.MediaPrefix)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("SERVER_HOOK_TIMEOUT", "2s")
	t.Setenv("CARD_MEDIA_PREFIX", "https://cdn.example/media")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.HookTimeout != 2*time.Second {
		t.Errorf("Expected env overrides, got %+v", cfg.Server)
	}
	if cfg.Card.CardOptions().MediaPrefix != "https://cdn.example/media" {
		t.Errorf("Expected cdn prefix, got %s", cfg.Card.MediaPrefix)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid duration")
	}
}
