package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// ConventionReference targets board[col][row], the historical argument order.
	ConventionReference = "reference"
	// ConventionRowMajor targets board[row][col].
	ConventionRowMajor = "row-major"
)

var ErrUnknownConvention = errors.New("unknown indexing convention")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Demo     Demo   `yaml:"demo"`
}

// Demo describes the single move performed by the demonstration run.
type Demo struct {
	Convention string     `yaml:"convention" env:"DEMO_CONVENTION" env-default:"reference"`
	Marker     string     `yaml:"marker" env-default:"X"`
	Row        int        `yaml:"row"`
	Col        int        `yaml:"col"`
	Board      [][]string `yaml:"board"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Demo.Convention {
	case ConventionReference, ConventionRowMajor:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConvention, that.Demo.Convention)
	}
}
