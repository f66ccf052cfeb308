package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		err    error
	}{
		{name: "expert", config: DefaultConfig()},
		{name: "single free cell", config: Config{Rows: 3, Cols: 3, Mines: 8}},
		{name: "one row", config: Config{Rows: 1, Cols: 2, Mines: 1}},
		{name: "zero rows", config: Config{Rows: 0, Cols: 3, Mines: 1}, err: ErrInvalidDimensions},
		{name: "negative cols", config: Config{Rows: 3, Cols: -1, Mines: 1}, err: ErrInvalidDimensions},
		{name: "no mines", config: Config{Rows: 3, Cols: 3, Mines: 0}, err: ErrInvalidMineCount},
		{name: "negative mines", config: Config{Rows: 3, Cols: 3, Mines: -2}, err: ErrInvalidMineCount},
		{name: "all mines", config: Config{Rows: 3, Cols: 3, Mines: 9}, err: ErrInvalidMineCount},
		{name: "too many mines", config: Config{Rows: 3, Cols: 3, Mines: 20}, err: ErrInvalidMineCount},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Validate()
			if test.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

func TestNewBoardRejectsInvalidConfig(t *testing.T) {
	board, err := NewBoard(Config{Rows: 2, Cols: 2, Mines: 4}, nil)
	assert.ErrorIs(t, err, ErrInvalidMineCount)
	assert.Nil(t, board)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 9\ncols: 9\nmines: 10\nseed: 42\n"), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Rows: 9, Cols: 9, Mines: 10, Seed: 42}, config)

	partial := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(partial, []byte("mines: 40\n"), 0644))

	config, err = LoadConfig(partial)
	require.NoError(t, err)
	assert.Equal(t, Config{Rows: 16, Cols: 30, Mines: 40}, config)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("rows: 2\ncols: 2\nmines: 4\n"), 0644))

	_, err = LoadConfig(invalid)
	assert.ErrorIs(t, err, ErrInvalidMineCount)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestReadConfigSkipsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 9\ncols: 9\n"), 0644))

	config, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Rows: 9, Cols: 9, Mines: 99}, config)

	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidMineCount)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
