package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_TestEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("GA_ENV", Test)

	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "65.50", cfg.Pricing.UnitPriceBase)
	assert.Equal(t, "INR", cfg.Pricing.LocalCurrency)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	// Arrange
	t.Setenv("GA_ENV", Test)
	t.Setenv("GA_LLM_API_KEY", "secret")
	t.Setenv("GA_SERVER_PORT", "9090")
	t.Setenv("GA_PRICING_TAXRATE", "0.05")

	// Act
	cfg, err := LoadConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.LLM.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.05", cfg.Pricing.TaxRate)
}

func TestLoadConfig_DurationOverrides(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"bare seconds", "5", 5 * time.Second},
		{"padded bare seconds", " 20 ", 20 * time.Second},
		{"duration string", "5s", 5 * time.Second},
		{"sub-second duration string", "1500ms", 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			t.Setenv("GA_ENV", Test)
			t.Setenv("GA_LLM_TIMEOUT", tt.value)

			// Act
			cfg, err := LoadConfig()

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.LLM.Timeout)
			assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		})
	}
}

func TestLoadConfig_MinuteDurationOverride(t *testing.T) {
	t.Setenv("GA_ENV", Test)
	t.Setenv("GA_DATABASE_CONNMAXLIFETIME", "1h")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 15*time.Minute, cfg.Database.ConnMaxIdleTime)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080},
			Store:  StoreConfig{Backend: BackendMemory},
			Pricing: PricingConfig{
				UnitPriceBase:      "65.50",
				ConversionRate:     "83.50",
				TaxRate:            "0.03",
				MinimumLocalAmount: "10",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"gemini provider", func(c *Config) { c.LLM.Provider = ProviderGemini }, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "redis" }, true},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "llama" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"non-numeric price", func(c *Config) { c.Pricing.UnitPriceBase = "cheap" }, true},
		{"negative tax", func(c *Config) { c.Pricing.TaxRate = "-0.01" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := c.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
