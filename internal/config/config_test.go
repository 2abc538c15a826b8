package config

import (
	"testing"
	"time"

	"knowledge-base/internal/domain"
)

var configEnvVars = []string{
	"SERVER_PORT",
	"STORE_DRIVER",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_NAME",
	"DB_MAX_CONNS",
	"REDIS_ADDR",
	"REDIS_DB",
	"ATTACHMENTS_DIR",
	"ATTACHMENTS_KEEP_TEMP",
	"WORKER_POOL_SIZE",
	"NOTIFY_ARTICLE_ADDED_ENABLED",
	"NOTIFY_ARTICLE_UPDATED_ENABLED",
	"SMTP_HOST",
	"SMTP_PORT",
	"ARTICLE_POSITION_POLICY",
	"PUBLIC_ID_SALT",
	"RATE_LIMIT_PER_MINUTE",
	"MIGRATE_ON_START",
}

// clearEnv blanks every variable Load reads so defaults apply. t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range configEnvVars {
		t.Setenv(env, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if !cfg.UsePostgres() {
			t.Errorf("StoreDriver = %v, want postgres", cfg.StoreDriver)
		}
		if cfg.DBName != "knowledge_base" {
			t.Errorf("DBName = %v, want knowledge_base", cfg.DBName)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if cfg.RedisAddr != "" {
			t.Errorf("RedisAddr = %v, want empty", cfg.RedisAddr)
		}
		if cfg.AttachmentsKeepTemp != 50 {
			t.Errorf("AttachmentsKeepTemp = %v, want 50", cfg.AttachmentsKeepTemp)
		}
		if !cfg.NotifyAddedEnabled || !cfg.NotifyUpdatedEnabled {
			t.Errorf("notifications should be enabled by default")
		}
		if cfg.PositionPolicy != domain.PositionPolicyMetadata {
			t.Errorf("PositionPolicy = %v, want metadata", cfg.PositionPolicy)
		}
		if !cfg.MigrateOnStart {
			t.Errorf("MigrateOnStart = false, want true")
		}
		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("STORE_DRIVER", "Memory")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("ATTACHMENTS_KEEP_TEMP", "10")
		t.Setenv("NOTIFY_ARTICLE_UPDATED_ENABLED", "false")
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("SMTP_PORT", "465")
		t.Setenv("ARTICLE_POSITION_POLICY", "version")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
		t.Setenv("MIGRATE_ON_START", "0")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.StoreDriver != StoreDriverMemory {
			t.Errorf("StoreDriver = %v, want memory", cfg.StoreDriver)
		}
		if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 {
			t.Errorf("Redis = %v/%v, want redis:6379/2", cfg.RedisAddr, cfg.RedisDB)
		}
		if cfg.AttachmentsKeepTemp != 10 {
			t.Errorf("AttachmentsKeepTemp = %v, want 10", cfg.AttachmentsKeepTemp)
		}
		if !cfg.NotifyAddedEnabled || cfg.NotifyUpdatedEnabled {
			t.Errorf("Notify flags = %v/%v, want true/false", cfg.NotifyAddedEnabled, cfg.NotifyUpdatedEnabled)
		}
		if cfg.SMTPPort != 465 {
			t.Errorf("SMTPPort = %v, want 465", cfg.SMTPPort)
		}
		if cfg.PositionPolicy != domain.PositionPolicyVersion {
			t.Errorf("PositionPolicy = %v, want version", cfg.PositionPolicy)
		}
		if cfg.RateLimitPerMinute != 0 {
			t.Errorf("RateLimitPerMinute = %v, want 0", cfg.RateLimitPerMinute)
		}
		if cfg.MigrateOnStart {
			t.Errorf("MigrateOnStart = true, want false")
		}
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "STORE_DRIVER", "sqlite"},
		{"unknown policy", "ARTICLE_POSITION_POLICY", "shuffle"},
		{"no workers", "WORKER_POOL_SIZE", "0"},
		{"negative keep", "ATTACHMENTS_KEEP_TEMP", "-1"},
		{"negative rate", "RATE_LIMIT_PER_MINUTE", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_SMTPPortCheckedOnlyWithHost(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_PORT", "0")
	if _, err := Load(); err != nil {
		t.Errorf("Load() without SMTP_HOST error = %v", err)
	}

	t.Setenv("SMTP_HOST", "smtp.example.com")
	if _, err := Load(); err == nil {
		t.Errorf("Load() with SMTP_HOST and port 0 should fail")
	}
}
