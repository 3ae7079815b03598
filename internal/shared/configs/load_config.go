package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"dealer-analytics/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. DEALER_ANALYTICS_PROVIDER_API_KEY.
const EnvPrefix = "DEALER_ANALYTICS"

// LoadConfig reads configuration from file, applies environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Provider.Enabled = cfg.Analytics.Source == SourceProvider

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", validators.Describe(err))
	}
	if cfg.Cache.Driver == CacheDriverRedis && cfg.Cache.Redis.Addr == "" {
		return nil, fmt.Errorf("config validation failed: cache.redis.addr (required)")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("analytics.source", SourceProvider)
	v.SetDefault("analytics.fetch_timeout", 15)
	v.SetDefault("analytics.default_range", "7d")
	v.SetDefault("provider.page_size", 1000)
	v.SetDefault("provider.max_pages", 50)
	v.SetDefault("provider.timeout", 10)
	v.SetDefault("cache.driver", CacheDriverMemory)
	v.SetDefault("cache.capacity", 64)
	v.SetDefault("cache.ttl", 300)
}
