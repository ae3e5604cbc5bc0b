package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "HANABI"

	DefaultLogLevel          = "info"
	DefaultServerURL         = ""
	DefaultOutboundQueueSize = 64
)

// Config holds the client settings.
type Config struct {
	LogLevel          string `mapstructure:"log_level"`
	ServerURL         string `mapstructure:"server_url"`
	Fixture           string `mapstructure:"fixture"`
	OutboundQueueSize int    `mapstructure:"outbound_queue_size"`
	CompressMessages  bool   `mapstructure:"compress_messages"`
}

// Load reads configuration from defaults, an optional config file, a .env file in the
// working directory and HANABI_* environment variables, in increasing precedence.
// An empty path skips the config file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %v", err)
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("fixture", "")
	v.SetDefault("outbound_queue_size", DefaultOutboundQueueSize)
	v.SetDefault("compress_messages", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OutboundQueueSize <= 0 {
		return fmt.Errorf("outbound_queue_size must be positive, got %d", c.OutboundQueueSize)
	}
	if c.ServerURL != "" && !strings.HasPrefix(c.ServerURL, "ws://") && !strings.HasPrefix(c.ServerURL, "wss://") {
		return fmt.Errorf("server_url must use ws:// or wss://, got %q", c.ServerURL)
	}
	return nil
}
