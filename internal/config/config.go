package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ioe2040/supporter-wall-go/internal/constants"
)

type Config struct {
	Scraper ScraperConfig
	Output  OutputConfig
	Logging LoggingConfig
}

type ScraperConfig struct {
	SourceURL     string
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	MinSupporters int
}

type OutputConfig struct {
	File string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Scraper: ScraperConfig{
			SourceURL:     getEnv("SOURCE_URL", constants.Scraper.SourceURL),
			BaseURL:       getEnv("BASE_URL", constants.Scraper.BaseURL),
			UserAgent:     getEnv("USER_AGENT", constants.Scraper.UserAgent),
			Timeout:       time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", int(constants.Scraper.Timeout/time.Second))) * time.Second,
			MinSupporters: getEnvInt("MIN_SUPPORTERS", constants.Guard.MinSupporters),
		},
		Output: OutputConfig{
			File: getEnv("OUTPUT_FILE", constants.Output.File),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scraper.SourceURL == "" {
		return fmt.Errorf("SOURCE_URL is required")
	}
	if c.Scraper.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}
	if u, err := url.Parse(c.Scraper.BaseURL); err != nil || !u.IsAbs() {
		return fmt.Errorf("BASE_URL must be an absolute URL")
	}
	if c.Output.File == "" {
		return fmt.Errorf("OUTPUT_FILE is required")
	}
	if c.Scraper.MinSupporters < 1 {
		return fmt.Errorf("MIN_SUPPORTERS must be at least 1")
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
