package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CORSOrigins != "*" {
		t.Errorf("CORSOrigins = %q, want *", cfg.CORSOrigins)
	}
	if cfg.APIKeyConfigured() {
		t.Error("default key should count as unconfigured")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("YOUTUBE_API_KEY", "AIzaRealLookingKey")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.APIKeyConfigured() {
		t.Error("real key should count as configured")
	}
}

func TestAPIKeyConfigured_PlaceholderRejected(t *testing.T) {
	cfg := &Config{YouTubeAPIKey: placeholderAPIKey}
	if cfg.APIKeyConfigured() {
		t.Error("placeholder key should count as unconfigured")
	}

	cfg = &Config{YouTubeAPIKey: ""}
	if cfg.APIKeyConfigured() {
		t.Error("empty key should count as unconfigured")
	}
}
