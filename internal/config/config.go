package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Feed   FeedConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port               int           `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout        time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout       time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout        time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout    time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

type FeedConfig struct {
	BaseURL string        `env:"FEED_BASE_URL" env-default:"https://www.ecb.europa.eu/stats/eurofxref"`
	Timeout time.Duration `env:"FEED_TIMEOUT" env-default:"10s"`
	// RefreshRate of 0 disables the background refresh.
	RefreshRate  time.Duration `env:"FEED_REFRESH_RATE" env-default:"1h"`
	RecentWindow time.Duration `env:"FEED_RECENT_WINDOW" env-default:"2160h"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// LoadConfig reads an optional .env file from the working directory, then the environment.
func LoadConfig() (*Config, error) {
	return Load(".env")
}

func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		// variables already set in the environment win over the file
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}
	if c.Feed.Timeout <= 0 {
		return fmt.Errorf("invalid FEED_TIMEOUT: %s", c.Feed.Timeout)
	}
	if c.Feed.RefreshRate < 0 {
		return fmt.Errorf("invalid FEED_REFRESH_RATE: %s", c.Feed.RefreshRate)
	}
	if c.Feed.RecentWindow <= 0 {
		return fmt.Errorf("invalid FEED_RECENT_WINDOW: %s", c.Feed.RecentWindow)
	}
	return nil
}
