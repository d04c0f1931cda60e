package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	Rounds    int    `yaml:"rounds" env:"ROUNDS" env-default:"0"`
	SkipNames bool   `yaml:"skip-names" env:"SKIP_NAMES"`
	PlayerX   Player `yaml:"player-x" env-prefix:"PLAYER_X_"`
	PlayerO   Player `yaml:"player-o" env-prefix:"PLAYER_O_"`
}

type Player struct {
	Name string `yaml:"name" env:"NAME"`
}

var ErrInvalidConfig = errors.New("invalid config")

// MustLoad - load all configurations in config.yml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, err
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.BoardSize < 1 {
		return fmt.Errorf("%w: board-size must be positive, got %d", ErrInvalidConfig, that.BoardSize)
	}

	if that.Rounds < 0 {
		return fmt.Errorf("%w: rounds must not be negative, got %d", ErrInvalidConfig, that.Rounds)
	}

	return nil
}

func (that *Player) NameOr(fallback string) string {
	if that.Name == "" {
		return fallback
	}
	return that.Name
}
