package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Search       SearchConfig    `mapstructure:"search"`
	Cache        CacheConfig     `mapstructure:"cache"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// SearchConfig contains cross-entity search settings
type SearchConfig struct {
	LookupTimeout   time.Duration `mapstructure:"lookup_timeout"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	MaxLimit        int           `mapstructure:"max_limit"`
	SuggestionLimit int           `mapstructure:"suggestion_limit"`
}

// CacheConfig contains server-side response cache settings
type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	MaxSizeMB  int64         `mapstructure:"max_size_mb"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
	EntityTTL  time.Duration `mapstructure:"entity_ttl"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	SearchPerMinute int  `mapstructure:"search_per_minute"`
	SearchBurst     int  `mapstructure:"search_burst"`
	GeneralRPS      int  `mapstructure:"general_rps"`
	GeneralBurst    int  `mapstructure:"general_burst"`
}
