package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      *AppConfig
	Database *DatabaseConfig
	Redis    *RedisConfig
	FollowUp *FollowUpConfig
	Security *SecurityConfig
}

type AppConfig struct {
	Name            string
	Version         string
	Environment     string
	Port            int
	Host            string
	LogLevel        string
	LogFormat       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type SecurityConfig struct {
	CORSAllowedOrigins []string
	TrustedProxies     []string
}

type FollowUpConfig struct {
	MaxAttempts int
	RetryDelay  time.Duration
	PollTimeout time.Duration
}

// Load reads configuration from the environment, optionally seeded by an
// app.env file in the working directory or ./config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &Config{
		App:      loadAppConfig(v),
		Database: loadDatabaseConfig(v),
		Redis:    loadRedisConfig(v),
		FollowUp: loadFollowUpConfig(v),
		Security: loadSecurityConfig(v),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "ridehail")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", 3000)
	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("HTTP_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second)

	setDatabaseDefaults(v)
	setRedisDefaults(v)

	v.SetDefault("FOLLOWUP_MAX_ATTEMPTS", 5)
	v.SetDefault("FOLLOWUP_RETRY_DELAY", 2*time.Second)
	v.SetDefault("FOLLOWUP_POLL_TIMEOUT", 5*time.Second)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TRUSTED_PROXIES", "")
}

func loadAppConfig(v *viper.Viper) *AppConfig {
	return &AppConfig{
		Name:            v.GetString("APP_NAME"),
		Version:         v.GetString("APP_VERSION"),
		Environment:     v.GetString("APP_ENV"),
		Port:            v.GetInt("APP_PORT"),
		Host:            v.GetString("APP_HOST"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		ReadTimeout:     v.GetDuration("HTTP_READ_TIMEOUT"),
		WriteTimeout:    v.GetDuration("HTTP_WRITE_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("HTTP_SHUTDOWN_TIMEOUT"),
	}
}

func loadFollowUpConfig(v *viper.Viper) *FollowUpConfig {
	return &FollowUpConfig{
		MaxAttempts: v.GetInt("FOLLOWUP_MAX_ATTEMPTS"),
		RetryDelay:  v.GetDuration("FOLLOWUP_RETRY_DELAY"),
		PollTimeout: v.GetDuration("FOLLOWUP_POLL_TIMEOUT"),
	}
}

func loadSecurityConfig(v *viper.Viper) *SecurityConfig {
	return &SecurityConfig{
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		TrustedProxies:     splitList(v.GetString("TRUSTED_PROXIES")),
	}
}

func (c *Config) validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.App.Port)
	}
	if c.Database.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("MONGODB_DATABASE is required")
	}
	if c.FollowUp.MaxAttempts < 1 {
		c.FollowUp.MaxAttempts = 1
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
