package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BACKEND", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("ACTION_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Backend != BackendRemote {
		t.Fatalf("expected remote backend, got %q", cfg.Backend)
	}
	if cfg.Console.EditWindow != time.Hour {
		t.Fatalf("expected 1h edit window, got %s", cfg.Console.EditWindow)
	}
	if cfg.Console.ActionTimeout != 0 {
		t.Fatalf("action timeout must default to none, got %s", cfg.Console.ActionTimeout)
	}
	if cfg.Redis.PoolSize != 10 || cfg.Redis.DialTimeout != 5*time.Second {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BACKEND", "Postgres")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("ACTION_TIMEOUT", "45s")
	t.Setenv("CONSOLE_SCOPE", "San Isidro")
	t.Setenv("REDIS_DISABLED", "true")
	t.Setenv("REDIS_POOL_SIZE", "32")
	t.Setenv("REDIS_READ_TIMEOUT", "750ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Backend != BackendPostgres || cfg.Postgres.Port != 6543 {
		t.Fatalf("unexpected postgres settings: %+v", cfg.Postgres)
	}
	if cfg.Console.ActionTimeout != 45*time.Second || cfg.Console.Scope != "San Isidro" {
		t.Fatalf("unexpected console settings: %+v", cfg.Console)
	}
	if !cfg.Redis.Disabled {
		t.Fatalf("redis should be disabled")
	}
	if cfg.Redis.PoolSize != 32 || cfg.Redis.ReadTimeout != 750*time.Millisecond {
		t.Fatalf("unexpected redis pool settings: %+v", cfg.Redis)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Http:    HttpConfig{Port: ":8080"},
			Backend: BackendRemote,
			Remote:  RemoteConfig{BaseURL: "http://api"},
			Webhook: WebhookConfig{Disabled: true},
			Console: ConsoleConfig{EditWindow: time.Hour},
		}
	}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"bad_port", func(c *Config) { c.Http.Port = "8080" }, true},
		{"unknown_backend", func(c *Config) { c.Backend = "mongo" }, true},
		{"remote_without_url", func(c *Config) { c.Remote.BaseURL = "" }, true},
		{"negative_timeout", func(c *Config) { c.Console.ActionTimeout = -time.Second }, true},
		{"zero_window", func(c *Config) { c.Console.EditWindow = 0 }, true},
		{"webhook_without_url", func(c *Config) { c.Webhook.Disabled = false }, true},
		{"negative_redis_pool", func(c *Config) { c.Redis.PoolSize = -1 }, true},
		{"negative_pool_ignored_when_disabled", func(c *Config) {
			c.Redis = RedisConfig{Disabled: true, PoolSize: -1}
		}, false},
		{"webhook_without_redis", func(c *Config) {
			c.Webhook = WebhookConfig{URL: "http://hook"}
			c.Redis.Disabled = true
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			err := c.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v got %v", tc.wantErr, err)
			}
		})
	}
}
