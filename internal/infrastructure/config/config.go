package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Store       StoreConfig    `mapstructure:"store"`
	Pricing     PricingConfig  `mapstructure:"pricing"`
	LLM         LLMConfig      `mapstructure:"llm"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StoreConfig selects the durable record store
type StoreConfig struct {
	Backend  string         `mapstructure:"backend"` // postgres, dynamodb or memory
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
}

// DynamoDBConfig contains the single-table settings
type DynamoDBConfig struct {
	Table            string `mapstructure:"table"`
	Region           string `mapstructure:"region"`
	Endpoint         string `mapstructure:"endpoint"` // local DynamoDB, empty for AWS
	TransactionIndex string `mapstructure:"transactionIndex"`
}

// PricingConfig holds the static gold price. Amounts are decimal strings.
type PricingConfig struct {
	UnitPriceBase      string `mapstructure:"unitPriceBase"`
	ConversionRate     string `mapstructure:"conversionRate"`
	BaseCurrency       string `mapstructure:"baseCurrency"`
	LocalCurrency      string `mapstructure:"localCurrency"`
	TaxRate            string `mapstructure:"taxRate"`
	MinimumLocalAmount string `mapstructure:"minimumLocalAmount"`
}

// LLMConfig contains the text backend settings; an empty provider means rules only
type LLMConfig struct {
	Provider        string        `mapstructure:"provider"` // gemini, openai or empty
	Model           string        `mapstructure:"model"`
	APIKey          string        `mapstructure:"apiKey"`
	APIKeyParameter string        `mapstructure:"apiKeyParameter"` // SSM parameter name
	BaseURL         string        `mapstructure:"baseUrl"`
	Timeout         time.Duration `mapstructure:"timeout"` // seconds
	Temperature     float32       `mapstructure:"temperature"`
	MaxOutputTokens int32         `mapstructure:"maxOutputTokens"`
}
