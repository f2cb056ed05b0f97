package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidTickInterval = errors.New("tick interval must be positive")

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"TETRIS_LOG_LEVEL" env-default:"info"`
	LogFile      string        `yaml:"log-file" env:"TETRIS_LOG_FILE" env-default:"tetris.log"`
	TickInterval time.Duration `yaml:"tick-interval" env:"TETRIS_TICK_INTERVAL" env-default:"500ms"`
	Seed         uint64        `yaml:"seed" env:"TETRIS_SEED" env-default:"0"`
	Redis        Redis         `yaml:"redis"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TETRIS_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TETRIS_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TETRIS_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.TickInterval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTickInterval, config.TickInterval)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
