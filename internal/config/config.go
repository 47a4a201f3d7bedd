package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendRemote   = "remote"
	BackendPostgres = "postgres"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Backend  string         `json:"backend"`
	Remote   RemoteConfig   `json:"remote"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Webhook  WebhookConfig  `json:"webhook"`
	Console  ConsoleConfig  `json:"console"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type RemoteConfig struct {
	BaseURL string        `json:"base_url"`
	Token   string        `json:"token,omitempty"`
	Timeout time.Duration `json:"timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr        string        `json:"addr"`
	Password    string        `json:"password,omitempty"`
	DB          int           `json:"db"`
	Disabled    bool          `json:"disabled"`
	SnapshotTTL time.Duration `json:"snapshot_ttl"`

	PoolSize     int           `json:"pool_size"`
	MinIdleConns int           `json:"min_idle_conns"`
	DialTimeout  time.Duration `json:"dial_timeout"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

type ConsoleConfig struct {
	// Scope limits the collection to one barangay; empty means all.
	Scope           string        `json:"scope"`
	EditWindow      time.Duration `json:"edit_window"`
	ActionTimeout   time.Duration `json:"action_timeout"`
	RefreshSchedule string        `json:"refresh_schedule"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Backend: strings.ToLower(getEnv("BACKEND", BackendRemote)),
		Remote: RemoteConfig{
			BaseURL: getEnv("REMOTE_BASE_URL", "http://localhost:8000/api"),
			Token:   getEnv("REMOTE_TOKEN", ""),
			Timeout: getEnvDuration("REMOTE_TIMEOUT", 15*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "brims"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", "redis-local:6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvInt("REDIS_DB", 0),
			Disabled:    getEnvBool("REDIS_DISABLED", false),
			SnapshotTTL: getEnvDuration("SNAPSHOT_TTL", 24*time.Hour),

			PoolSize:     getEnvInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 1),
			DialTimeout:  getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		APIKey: getEnv("API_KEY", ""),
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", true),
		},
		Console: ConsoleConfig{
			Scope:           getEnv("CONSOLE_SCOPE", ""),
			EditWindow:      getEnvDuration("CONSOLE_EDIT_WINDOW", time.Hour),
			ActionTimeout:   getEnvDuration("ACTION_TIMEOUT", 0),
			RefreshSchedule: getEnv("REFRESH_SCHEDULE", "@every 1m"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("backend", cfg.Backend),
		slog.String("scope", cfg.Console.Scope),
		slog.Bool("redis_disabled", cfg.Redis.Disabled),
		slog.Bool("webhook_disabled", cfg.Webhook.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Backend {
	case BackendRemote:
		if c.Remote.BaseURL == "" {
			return errors.New("REMOTE_BASE_URL required for BACKEND=remote")
		}
	case BackendPostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required for BACKEND=postgres")
		}
	default:
		return errors.New("BACKEND must be 'remote' or 'postgres'")
	}

	if c.Console.EditWindow <= 0 {
		return errors.New("CONSOLE_EDIT_WINDOW must be positive")
	}
	if c.Console.ActionTimeout < 0 {
		return errors.New("ACTION_TIMEOUT must not be negative")
	}

	if !c.Redis.Disabled && (c.Redis.PoolSize < 0 || c.Redis.MinIdleConns < 0) {
		return errors.New("REDIS_POOL_SIZE and REDIS_MIN_IDLE_CONNS must not be negative")
	}

	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		return errors.New("WEBHOOK_URL required unless WEBHOOK_DISABLED=true")
	}
	if !c.Webhook.Disabled && c.Redis.Disabled {
		return errors.New("webhook delivery needs redis; set WEBHOOK_DISABLED=true or enable redis")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
