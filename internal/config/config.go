package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/xxxsen/common/logger"

	"github.com/xxxsen/simpy/client"
)

type Config struct {
	Username       string           `json:"username"`
	Password       string           `json:"password"`
	BaseURL        string           `json:"base_url"`
	UserAgent      string           `json:"user_agent"`
	TimeoutSeconds int              `json:"timeout_seconds"`
	Strict         bool             `json:"strict"`
	LogConfig      logger.LogConfig `json:"log_config"`
}

// Load reads a JSON config file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = client.DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = client.DefaultUserAgent
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	if c.LogConfig.Level == "" {
		c.LogConfig.Level = "info"
	}
	if c.LogConfig.File == "" {
		c.LogConfig.Console = true
	}
}

func (c *Config) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) ClientConfig() client.Config {
	return client.Config{
		Username:  c.Username,
		Password:  c.Password,
		BaseURL:   c.BaseURL,
		UserAgent: c.UserAgent,
		Strict:    c.Strict,
	}
}
