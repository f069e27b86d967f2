package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	LLM     LLMConfig     `mapstructure:"llm"`
	User    UserConfig    `mapstructure:"user"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig selects and configures the progress key-value backend.
// Driver is one of memory, file, sqlite, redis.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"` // file: data directory, sqlite: database file
	Addr   string `mapstructure:"addr"` // redis address
	DB     int    `mapstructure:"db"`   // redis database number
}

// DatasetConfig points at an external vocabulary JSON file. When empty the
// embedded dataset is used.
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

// LLMConfig configures the external language-model proxy.
type LLMConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UserConfig holds the identity used when a request carries none.
type UserConfig struct {
	DefaultIdentity string `mapstructure:"default_identity"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.path", "data/progress")
	viper.SetDefault("storage.addr", "localhost:6379")
	viper.SetDefault("storage.db", 0)

	viper.SetDefault("dataset.path", "")

	viper.SetDefault("llm.base_url", "http://localhost:8090")
	viper.SetDefault("llm.timeout", "120s")

	viper.SetDefault("user.default_identity", "anonymous")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}
