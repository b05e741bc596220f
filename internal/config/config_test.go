package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port, got %q", cfg.HTTPPort)
	}
	if cfg.SessionTTL() != time.Hour {
		t.Fatalf("expected 1h session ttl, got %v", cfg.SessionTTL())
	}
	if cfg.QuestionRateWindow() != 10*time.Minute || cfg.QuestionRateMax != 20 {
		t.Fatalf("unexpected rate limit defaults: %v/%d", cfg.QuestionRateWindow(), cfg.QuestionRateMax)
	}
	minDate, maxDate, err := cfg.BirthDateBounds()
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	if minDate.Year() != 1800 || maxDate.Year() != 2200 || maxDate.Month() != time.December || maxDate.Day() != 31 {
		t.Fatalf("unexpected bounds %v..%v", minDate, maxDate)
	}
}

func TestLoadConfig_InvalidBounds(t *testing.T) {
	t.Setenv("MIN_BIRTH_DATE", "2000-01-01")
	t.Setenv("MAX_BIRTH_DATE", "1999-12-31")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when max is before min")
	}

	t.Setenv("MAX_BIRTH_DATE", "not-a-date")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}
