package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Store backends
const (
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// LLM providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// GA_LLM_APIKEY overrides llm.apiKey and so on
	v.SetEnvPrefix("GA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)
	scaled := normalizeDurations(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config, scaled)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, covers a slow LLM reply
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "gold_advisor")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 20)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("store.dynamodb.table", "gold-advisor")
	v.SetDefault("store.dynamodb.region", "us-east-1")
	v.SetDefault("store.dynamodb.endpoint", "")
	v.SetDefault("store.dynamodb.transactionIndex", "TransactionIdIndex")

	v.SetDefault("pricing.unitPriceBase", "65.50")
	v.SetDefault("pricing.conversionRate", "83.50")
	v.SetDefault("pricing.baseCurrency", "USD")
	v.SetDefault("pricing.localCurrency", "INR")
	v.SetDefault("pricing.taxRate", "0.03")
	v.SetDefault("pricing.minimumLocalAmount", "10")

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "gemini-2.0-flash")
	v.SetDefault("llm.apiKey", "")
	v.SetDefault("llm.apiKeyParameter", "")
	v.SetDefault("llm.baseUrl", "")
	v.SetDefault("llm.timeout", 10) // seconds
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.maxOutputTokens", 300)
}

// getEnvironment determines the environment from GA_ENV
func getEnvironment() string {
	env := os.Getenv("GA_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps conventional secret variables onto config keys
func processEnvOverrides(v *viper.Viper) {
	if dbPass := os.Getenv("GA_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbHost := os.Getenv("GA_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if apiKey := os.Getenv("GA_LLM_API_KEY"); apiKey != "" {
		v.Set("llm.apiKey", apiKey)
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" && v.GetString("llm.apiKey") == "" {
		v.Set("llm.apiKey", apiKey)
	}
}

// durationKeys maps each duration setting to the unit a bare number is written in
var durationKeys = map[string]time.Duration{
	"server.readTimeout":       time.Second,
	"server.writeTimeout":      time.Second,
	"server.idleTimeout":       time.Second,
	"server.readHeaderTimeout": time.Second,
	"server.shutdownTimeout":   time.Second,
	"database.connMaxLifetime": time.Minute,
	"database.connMaxIdleTime": time.Minute,
	"database.queryTimeout":    time.Second,
	"database.retryDelay":      time.Second,
	"llm.timeout":              time.Second,
}

// normalizeDurations turns numeric strings (usually env overrides) into integers and
// reports which keys hold bare numbers. Values like "5s" are left for the decoder.
func normalizeDurations(v *viper.Viper) map[string]bool {
	scaled := make(map[string]bool, len(durationKeys))
	for key := range durationKeys {
		raw, ok := v.Get(key).(string)
		if !ok {
			scaled[key] = true
			continue
		}
		if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			v.Set(key, n)
			scaled[key] = true
		}
	}
	return scaled
}

// processDurations converts bare numbers to durations in their configured unit
func processDurations(config *Config, scaled map[string]bool) {
	scale := func(key string, d *time.Duration) {
		if scaled[key] {
			*d *= durationKeys[key]
		}
	}

	scale("server.readTimeout", &config.Server.ReadTimeout)
	scale("server.writeTimeout", &config.Server.WriteTimeout)
	scale("server.idleTimeout", &config.Server.IdleTimeout)
	scale("server.readHeaderTimeout", &config.Server.ReadHeaderTimeout)
	scale("server.shutdownTimeout", &config.Server.ShutdownTimeout)

	scale("database.connMaxLifetime", &config.Database.ConnMaxLifetime)
	scale("database.connMaxIdleTime", &config.Database.ConnMaxIdleTime)
	scale("database.queryTimeout", &config.Database.QueryTimeout)
	scale("database.retryDelay", &config.Database.RetryDelay)

	scale("llm.timeout", &config.LLM.Timeout)
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendPostgres, BackendDynamoDB, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	switch strings.ToLower(c.LLM.Provider) {
	case "", ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	pricing := map[string]string{
		"pricing.unitPriceBase":      c.Pricing.UnitPriceBase,
		"pricing.conversionRate":     c.Pricing.ConversionRate,
		"pricing.taxRate":            c.Pricing.TaxRate,
		"pricing.minimumLocalAmount": c.Pricing.MinimumLocalAmount,
	}
	for key, value := range pricing {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		if d.IsNegative() {
			return fmt.Errorf("invalid %s %q: must not be negative", key, value)
		}
	}

	return nil
}

// Decimal parses a pricing value already checked by Validate
func Decimal(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
