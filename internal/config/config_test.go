package config

import "testing"

func TestLoadConfig_RequiresAPISettings(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("API_TOKEN", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when API_BASE_URL is missing")
	}

	t.Setenv("API_BASE_URL", "https://api.example.com")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when API_TOKEN is missing")
	}

	t.Setenv("API_TOKEN", "secreto")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" || cfg.APIToken != "secreto" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_TOKEN", "secreto")
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development default, got %q", cfg.Environment)
	}
}
