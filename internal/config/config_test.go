package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://pulse-survey.example.com/api/v1")
	t.Setenv("UPSTREAM_TOKEN", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("port = %q, want 5000", cfg.Server.Port)
	}
	if cfg.Upstream.CompanyID != "4" {
		t.Errorf("company id = %q, want 4", cfg.Upstream.CompanyID)
	}
	if !cfg.Dashboard.EnableMockData {
		t.Error("mock data should default to enabled")
	}
	if cfg.Dashboard.MaxConcurrentFetches != 5 {
		t.Errorf("max concurrent fetches = %d, want 5", cfg.Dashboard.MaxConcurrentFetches)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://localhost:8081")
	t.Setenv("UPSTREAM_TOKEN", "secret")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("DASHBOARD_ENABLE_MOCK_DATA", "false")
	t.Setenv("DASHBOARD_MAX_CONCURRENT_FETCHES", "10")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Dashboard.EnableMockData {
		t.Error("mock data should be disabled")
	}
	if cfg.Dashboard.MaxConcurrentFetches != 10 {
		t.Errorf("max concurrent fetches = %d, want 10", cfg.Dashboard.MaxConcurrentFetches)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://localhost:8081")
	// UPSTREAM_TOKEN 缺失

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when UPSTREAM_TOKEN is missing")
	}
}
