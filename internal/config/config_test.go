package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"SITE_URL",
		"RESEND_API_KEY",
		"FROM_EMAIL",
		"CONTACT_EMAIL",
		"DIGEST_POST_LIMIT",
		"DIGEST_BATCH_SIZE",
		"DIGEST_BATCH_DELAY",
		"LOG_LEVEL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "breaking_news" {
			t.Errorf("DBName = %v, want breaking_news", cfg.DBName)
		}
		if cfg.SiteURL != "https://californiabreakingnews.com" {
			t.Errorf("SiteURL = %v, want https://californiabreakingnews.com", cfg.SiteURL)
		}
		if cfg.DigestPostLimit != 10 {
			t.Errorf("DigestPostLimit = %v, want 10", cfg.DigestPostLimit)
		}
		if cfg.DigestBatchSize != 10 {
			t.Errorf("DigestBatchSize = %v, want 10", cfg.DigestBatchSize)
		}
		if cfg.DigestBatchDelay != time.Second {
			t.Errorf("DigestBatchDelay = %v, want 1s", cfg.DigestBatchDelay)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_HOST", "db.internal")
		os.Setenv("DIGEST_BATCH_SIZE", "25")
		os.Setenv("DIGEST_BATCH_DELAY", "250ms")
		defer func() {
			os.Unsetenv("SERVER_PORT")
			os.Unsetenv("DB_HOST")
			os.Unsetenv("DIGEST_BATCH_SIZE")
			os.Unsetenv("DIGEST_BATCH_DELAY")
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.internal" {
			t.Errorf("DBHost = %v, want db.internal", cfg.DBHost)
		}
		if cfg.DigestBatchSize != 25 {
			t.Errorf("DigestBatchSize = %v, want 25", cfg.DigestBatchSize)
		}
		if cfg.DigestBatchDelay != 250*time.Millisecond {
			t.Errorf("DigestBatchDelay = %v, want 250ms", cfg.DigestBatchDelay)
		}
	})

	t.Run("invalid digest batch size", func(t *testing.T) {
		os.Setenv("DIGEST_BATCH_SIZE", "0")
		defer os.Unsetenv("DIGEST_BATCH_SIZE")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for DIGEST_BATCH_SIZE=0")
		}
	})

	t.Run("malformed int falls back to default", func(t *testing.T) {
		os.Setenv("DB_PORT", "not-a-number")
		defer os.Unsetenv("DB_PORT")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
	})
}
