package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port            int
	MaxLoanAmount   float64
	RequestTimeout  time.Duration
	MaxBodySize     string
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
}

var defaults = map[string]interface{}{
	"port":              8000,
	"max_loan_amount":   1e9,
	"request_timeout":   10 * time.Second,
	"max_body_size":     "64K",
	"otel_endpoint":     "",
	"otel_service_name": "loan-calculator",
	"log_level":         "info",
	"log_format":        "json",
}

// LoadConfig загружает конфигурацию из .env, переменных окружения и, если указан, файла конфигурации
func LoadConfig(path string) (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Port:            v.GetInt("port"),
		MaxLoanAmount:   v.GetFloat64("max_loan_amount"),
		RequestTimeout:  v.GetDuration("request_timeout"),
		MaxBodySize:     v.GetString("max_body_size"),
		OTELEndpoint:    v.GetString("otel_endpoint"),
		OTELServiceName: v.GetString("otel_service_name"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
		LogFormat:       strings.ToLower(v.GetString("log_format")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.MaxLoanAmount <= 0 {
		return fmt.Errorf("MAX_LOAN_AMOUNT must be positive, got %g", c.MaxLoanAmount)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

// Addr возвращает адрес для прослушивания HTTP сервером
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
