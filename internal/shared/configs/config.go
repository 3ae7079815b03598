package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Analytics   AnalyticsConfig   `mapstructure:"analytics" validate:"required"`
	Provider    ProviderConfig    `mapstructure:"provider"`
	Cache       CacheConfig       `mapstructure:"cache" validate:"required"`
	Auth        AuthConfig        `mapstructure:"auth" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

const (
	SourceProvider = "provider"
	SourceStored   = "stored"
)

// AnalyticsConfig controls where summaries read their events from.
type AnalyticsConfig struct {
	Source       string `mapstructure:"source" validate:"required,oneof=provider stored"`
	FetchTimeout int    `mapstructure:"fetch_timeout" validate:"required,min=1"` // seconds
	DefaultRange string `mapstructure:"default_range" validate:"required,oneof=24h 7d 30d 90d"`
}

// ProviderConfig holds the external analytics provider settings.
// Only required when analytics.source is "provider".
type ProviderConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required_if=Enabled true"`
	ProjectID string `mapstructure:"project_id" validate:"required_if=Enabled true"`
	APIKey    string `mapstructure:"api_key" validate:"required_if=Enabled true"`
	PageSize  int    `mapstructure:"page_size" validate:"omitempty,min=1,max=10000"`
	MaxPages  int    `mapstructure:"max_pages" validate:"omitempty,min=1"`
	Timeout   int    `mapstructure:"timeout" validate:"omitempty,min=1"` // seconds, per page

	// Enabled is derived from analytics.source, not read from the file.
	Enabled bool `mapstructure:"-"`
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// CacheConfig holds the summary cache configuration.
type CacheConfig struct {
	Driver   string      `mapstructure:"driver" validate:"required,oneof=memory redis"`
	Capacity int         `mapstructure:"capacity" validate:"required,min=1"`
	TTL      int         `mapstructure:"ttl" validate:"required,min=1"` // seconds
	Redis    RedisConfig `mapstructure:"redis"`
}

// RedisConfig is used when cache.driver is "redis".
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// AuthConfig holds the dashboard token verification settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=16"`
}
