package game

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidMineCount  = errors.New("invalid mine count")
)

type Config struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`

	// Seed for mine placement; 0 seeds from the clock
	Seed int64 `yaml:"seed,omitempty"`
}

// DefaultConfig is the classic "expert" board
func DefaultConfig() Config {
	return Config{
		Rows:  16,
		Cols:  30,
		Mines: 99,
	}
}

func (config Config) NumCells() int {
	return config.Rows * config.Cols
}

// Validate reports whether a board can be built from the config. Mines must
// leave at least one free cell, or planting could never finish.
func (config Config) Validate() error {
	if config.Rows <= 0 || config.Cols <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", config.Rows, config.Cols)
	}
	if config.Mines <= 0 || config.Mines >= config.NumCells() {
		return errors.Wrapf(ErrInvalidMineCount,
			"%d mines on a %dx%d board (want 0 < mines < %d)",
			config.Mines, config.Rows, config.Cols, config.NumCells())
	}
	return nil
}

// LoadConfig reads and validates a YAML config file. Fields missing from the
// file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	config, err := ReadConfig(path)
	if err != nil {
		return config, err
	}
	return config, config.Validate()
}

// ReadConfig is LoadConfig without validation, for callers which override
// fields before validating.
func ReadConfig(path string) (Config, error) {
	config := DefaultConfig()

	in, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(in, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}
