package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/config"
)

func validAppConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:          "localhost",
		Port:          "5432",
		Username:      "postgres",
		Password:      "secret",
		Database:      "gold_advisor",
		SSLMode:       "disable",
		MaxOpenConns:  20,
		MaxIdleConns:  10,
		QueryTimeout:  5 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(validAppConfig(), "warn")

	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=gold_advisor sslmode=disable", cfg.DSN())
}

func TestNewConfig_InvalidPort(t *testing.T) {
	c := validAppConfig()
	c.Port = "fifty"

	_, err := NewConfig(c, "info")

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing host", func(c *Config) { c.Host = "" }},
		{"missing user", func(c *Config) { c.Username = "" }},
		{"missing database", func(c *Config) { c.Database = "" }},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"no connections", func(c *Config) { c.MaxOpenConns = 0 }},
		{"no query timeout", func(c *Config) { c.QueryTimeout = 0 }},
		{"no attempts", func(c *Config) { c.RetryAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(validAppConfig(), "info")
			require.NoError(t, err)

			tt.mutate(cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select * from gold_transactions"))
	assert.Equal(t, "INSERT", extractQueryType("INSERT INTO user_profiles"))
	assert.Equal(t, "", extractQueryType("VACUUM"))
}
