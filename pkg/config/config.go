package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatflowers/prayerbook/pkg/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type StorageDriver string

const (
	StorageDriverPostgres StorageDriver = "postgres"
	StorageDriverSQLite   StorageDriver = "sqlite"
	StorageDriverMemory   StorageDriver = "memory"
)

type StorageConfig struct {
	Driver       StorageDriver `mapstructure:"driver"`
	DSN          string        `mapstructure:"dsn"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	WriteRetries uint64        `mapstructure:"write_retries"`
	RetryBase    time.Duration `mapstructure:"retry_base"`
}

type Env string

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

type Config struct {
	Env             Env              `mapstructure:"env"`
	Server          ServerConfig     `mapstructure:"server"`
	Storage         StorageConfig    `mapstructure:"storage"`
	Timezone        string           `mapstructure:"timezone"`
	Plans           []*types.Plan    `mapstructure:"plans"`
	AppleIAP        AppleIAPConfig   `mapstructure:"apple_iap"`
	Generation      GenerationConfig `mapstructure:"generation"`
	RateLimit       RateLimitConfig  `mapstructure:"rate_limit"`
	Share           ShareConfig      `mapstructure:"share"`
	CardBackgrounds int              `mapstructure:"card_backgrounds"`
	MetricsAddr     string           `mapstructure:"metrics_addr"`

	// AllowDirectUpgrade exposes the unverified upgrade endpoint. Off in
	// prod, where upgrades go through store verification.
	AllowDirectUpgrade bool `mapstructure:"allow_direct_upgrade"`
}

type AppleIAPConfig struct {
	KeyID      string `mapstructure:"key_id"`
	KeyContent string `mapstructure:"key_content"`
	BundleID   string `mapstructure:"bundle_id"`
	Issuer     string `mapstructure:"issuer"`
	IsProd     bool   `mapstructure:"is_prod"`
}

// Enabled reports whether enough credentials are present to talk to the App Store.
func (c AppleIAPConfig) Enabled() bool {
	return c.KeyID != "" && c.KeyContent != "" && c.BundleID != "" && c.Issuer != ""
}

type GenerationConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Retries    uint64        `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

type RateLimitConfig struct {
	GenerationPerMinute int `mapstructure:"generation_per_minute"`
	Burst               int `mapstructure:"burst"`
}

type ShareConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// GetPlanByProviderItemID resolves the tier sold under a store product id.
func (c *Config) GetPlanByProviderItemID(providerID types.PaymentProvider, providerItemID string) (*types.Plan, error) {
	for _, plan := range c.Plans {
		if plan.ProviderID == providerID && plan.ProviderItemID == providerItemID {
			return plan, nil
		}
	}
	return nil, fmt.Errorf("plan not found for %s product %q", providerID, providerItemID)
}

// Location returns the time zone that defines the user's calendar day.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// loadDotenv populates the process environment from .env files. Existing
// variables win over file values.
func loadDotenv() {
	files := []string{}
	if env := os.Getenv("APP_ENV"); env != "" {
		files = append(files, ".env."+env)
	}
	files = append(files, ".env")
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

func New() (*Config, error) {
	loadDotenv()

	v := viper.New()
	// Allow overriding config file via env:
	// - APP_CONFIG_FILE: absolute or relative file path (e.g., /etc/app/prod.yaml)
	// - APP_CONFIG_NAME: config base name without extension (default: "config")
	if file := os.Getenv("APP_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
	} else {
		cfgName := os.Getenv("APP_CONFIG_NAME")
		if cfgName == "" {
			cfgName = "config"
		}
		v.SetConfigName(cfgName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		_ = err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8888)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("storage.driver", string(StorageDriverSQLite))
	v.SetDefault("storage.dsn", "file:prayerbook.db?_pragma=busy_timeout(5000)")
	v.SetDefault("storage.write_timeout", 5*time.Second)
	v.SetDefault("storage.write_retries", 3)
	v.SetDefault("storage.retry_base", 200*time.Millisecond)
	v.SetDefault("generation.timeout", 60*time.Second)
	v.SetDefault("generation.retries", 1)
	v.SetDefault("generation.retry_delay", time.Second)
	v.SetDefault("rate_limit.generation_per_minute", 6)
	v.SetDefault("rate_limit.burst", 3)
	v.SetDefault("card_backgrounds", 10)
	v.SetDefault("metrics_addr", ":90")
	v.SetDefault("allow_direct_upgrade", false)
	v.SetDefault("plans", []map[string]any{
		{"tier": "monthly", "provider_id": "apple", "provider_item_id": "prayerbook.premium.monthly"},
		{"tier": "annual", "provider_id": "apple", "provider_item_id": "prayerbook.premium.annual"},
	})
}

var Module = fx.Options(
	fx.Provide(New),
)
