package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries all environment-derived settings. It is constructed once at
// startup and passed into components explicitly; nothing reads the environment
// after Load returns.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	Environment string

	// Optional New Relic log forwarding. When either value is empty the
	// forwarder is disabled rather than failing startup.
	NewRelicLogURL     string
	NewRelicLicenseKey string

	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ServerSelectionTimeout time.Duration
}

// Load reads the configuration from the environment. An error is returned for
// each missing required variable; callers are expected to treat that as fatal.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               os.Getenv("PORT"),
		MongoURI:           os.Getenv("MONGODB_URI"),
		DBName:             os.Getenv("DB_NAME"),
		Environment:        os.Getenv("APP_ENV"),
		NewRelicLogURL:     os.Getenv("NEW_RELIC_LOG_API_URL"),
		NewRelicLicenseKey: os.Getenv("NEW_RELIC_LICENSE_KEY"),
	}

	missing := []string{}
	if cfg.Port == "" {
		missing = append(missing, "PORT")
	}
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if cfg.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if cfg.Environment == "" {
		missing = append(missing, "APP_ENV")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %v", missing)
	}

	cfg.MaxPoolSize = envUint("DB_MAX_POOL_SIZE", 10)
	cfg.MinPoolSize = envUint("DB_MIN_POOL_SIZE", 2)
	cfg.MaxConnIdleTime = envMillis("DB_MAX_IDLE_TIME_MS", 60*time.Second)
	cfg.ServerSelectionTimeout = envMillis("DB_SERVER_SELECTION_TIMEOUT_MS", 5*time.Second)

	return cfg, nil
}

// LogForwardingEnabled reports whether both New Relic settings are present.
func (c *Config) LogForwardingEnabled() bool {
	return c.NewRelicLogURL != "" && c.NewRelicLicenseKey != ""
}

func envUint(key string, def uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func envMillis(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return time.Duration(n) * time.Millisecond
}
