package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageSheets   = "sheets"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// workout
	Timezone    string `toml:"timezone"`
	DefaultMode int    `toml:"default_mode"`

	// storage: sheets | postgres | memory
	Storage        string `toml:"storage"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	CheckinLockTTL            Duration `toml:"checkin_lock_ttl"`
	ReferenceCacheTTL         Duration `toml:"reference_cache_ttl"`
	CheckinRateLimitPerMin    int      `toml:"rate_limit_checkin_per_min"`
	LoveUnlockRateLimitPerMin int      `toml:"rate_limit_love_unlock_per_min"`
	LoveAuthEnabled           bool     `toml:"love_auth_enabled"`
	AllowedOrigins            []string `toml:"allowed_origins"`

	// bot
	APIBase         string `toml:"api_base"`
	ReminderCron    string `toml:"reminder_cron"`
	ReminderEnabled bool   `toml:"reminder_enabled"`
}

// Duration lets toml values like "5s" or "10m" land in a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var tomlConfig Toml
	if _, err := toml.Decode(string(configBytes), &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Timezone == "" {
		c.Timezone = "Asia/Bangkok"
	}
	if c.DefaultMode == 0 {
		c.DefaultMode = 4
	}
	if c.Storage == "" {
		c.Storage = StorageSheets
	}
	if c.CheckinLockTTL.Duration == 0 {
		c.CheckinLockTTL.Duration = 10 * time.Second
	}
	if c.ReminderCron == "" {
		c.ReminderCron = "0 19 * * *"
	}
	if c.APIBase == "" {
		c.APIBase = fmt.Sprintf("http://localhost:%d", c.Port)
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be set")
	}
	if c.DefaultMode != 4 && c.DefaultMode != 5 {
		return fmt.Errorf("default_mode must be 4 or 5, got %d", c.DefaultMode)
	}
	switch c.Storage {
	case StorageSheets, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown storage: %s", c.Storage)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Secrets are read from the environment, never from the toml file.
type Secrets struct {
	SheetID                  string
	GoogleServiceAccountJSON string
	TelegramBotToken         string
	TelegramChatID           string
	RedisPassword            string
	PostgresPassword         string
	LovePasscodeHash         string
	SentryDSN                string
	HoneycombEnabled         bool
	HoneycombAPIKey          string
}

func SecretsFromEnv() Secrets {
	return Secrets{
		SheetID:                  os.Getenv("GYMCYCLE_SHEET_ID"),
		GoogleServiceAccountJSON: os.Getenv("GYMCYCLE_GOOGLE_SERVICE_ACCOUNT_JSON"),
		TelegramBotToken:         os.Getenv("GYMCYCLE_TELEGRAM_BOT_TOKEN"),
		TelegramChatID:           os.Getenv("GYMCYCLE_TELEGRAM_CHAT_ID"),
		RedisPassword:            os.Getenv("GYMCYCLE_REDIS_PASS"),
		PostgresPassword:         os.Getenv("GYMCYCLE_POSTGRES_PASS"),
		LovePasscodeHash:         os.Getenv("GYMCYCLE_LOVE_PASSCODE_HASH"),
		SentryDSN:                os.Getenv("SENTRY_DSN"),
		HoneycombEnabled:         os.Getenv("HONEYCOMB_ENABLED") == "true",
		HoneycombAPIKey:          os.Getenv("HONEYCOMB_API_KEY"),
	}
}
