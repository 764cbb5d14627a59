package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, viper.GetInt("server.port"))
	assert.Equal(t, 20, viper.GetInt("search.default_limit"))
	assert.Equal(t, 50, viper.GetInt("search.max_limit"))
	assert.Equal(t, 5*time.Second, viper.GetDuration("search.lookup_timeout"))
	assert.Equal(t, 30, viper.GetInt("rate_limiting.search_per_minute"))
	assert.Equal(t, 5*time.Minute, viper.GetDuration("cache.default_ttl"))
}

func TestValidateAutoCorrects(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("search.default_limit", -1)
	viper.Set("search.max_limit", 0)
	viper.Set("rate_limiting.search_per_minute", 0)

	require.NoError(t, validate())

	assert.Equal(t, 20, viper.GetInt("search.default_limit"))
	assert.Equal(t, 50, viper.GetInt("search.max_limit"))
	assert.Equal(t, 30, viper.GetInt("rate_limiting.search_per_minute"))
}

func TestValidateRejectsBadPort(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("server.port", 0)

	assert.Error(t, validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "valid config",
			config: &Config{
				Server: ServerConfig{Host: "localhost", Port: 8080},
				Search: SearchConfig{DefaultLimit: 20, MaxLimit: 50},
				RateLimiting: RateLimitConfig{
					SearchPerMinute: 30,
					SearchBurst:     10,
				},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &Config{
				Server: ServerConfig{Port: -1},
			},
			wantErr: true,
		},
		{
			name: "corrects inverted limits",
			config: &Config{
				Server: ServerConfig{Port: 8080},
				Search: SearchConfig{DefaultLimit: 40, MaxLimit: 10},
			},
			wantErr: false,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 40, c.Search.MaxLimit)
			},
		},
		{
			name: "corrects zero search quota",
			config: &Config{
				Server: ServerConfig{Port: 8080},
			},
			wantErr: false,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 30, c.RateLimiting.SearchPerMinute)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, tt.config)
			}
		})
	}
}
