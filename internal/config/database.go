package config

import (
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URI            string
	Database       string
	MaxPoolSize    int
	MinPoolSize    int
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
	ConnectRetries int
	RetryBackoff   time.Duration
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "mydatabase")
	v.SetDefault("MONGODB_MAX_POOL_SIZE", 100)
	v.SetDefault("MONGODB_MIN_POOL_SIZE", 5)
	v.SetDefault("MONGODB_CONNECT_TIMEOUT", 10*time.Second)
	v.SetDefault("MONGODB_SOCKET_TIMEOUT", 30*time.Second)
	v.SetDefault("MONGODB_CONNECT_RETRIES", 5)
	v.SetDefault("MONGODB_RETRY_BACKOFF", time.Second)
}

func loadDatabaseConfig(v *viper.Viper) *DatabaseConfig {
	return &DatabaseConfig{
		URI:            v.GetString("MONGODB_URI"),
		Database:       v.GetString("MONGODB_DATABASE"),
		MaxPoolSize:    v.GetInt("MONGODB_MAX_POOL_SIZE"),
		MinPoolSize:    v.GetInt("MONGODB_MIN_POOL_SIZE"),
		ConnectTimeout: v.GetDuration("MONGODB_CONNECT_TIMEOUT"),
		SocketTimeout:  v.GetDuration("MONGODB_SOCKET_TIMEOUT"),
		ConnectRetries: v.GetInt("MONGODB_CONNECT_RETRIES"),
		RetryBackoff:   v.GetDuration("MONGODB_RETRY_BACKOFF"),
	}
}
