package config

import (
	"gridsnake/game/types"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, types.DefaultSnakePos, cfg.Spawn())
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	t.Setenv("SNAKE_GRID_SIZE", "30")
	t.Setenv("SNAKE_TICK", "50ms")
	t.Setenv("SNAKE_SEED", "17")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load([]string{"-grid", "12", "-spawn-x", "2", "-spawn-y", "3"})
	require.NoError(t, err)
	assert.Equal(t, uint(12), cfg.GridSize)
	assert.Equal(t, types.GridCoord{X: 2, Y: 3}, cfg.Spawn())
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, uint64(17), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNAKE_FONT_SIZE=18\nSNAKE_PADDING=40\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("SNAKE_FONT_SIZE")
		os.Unsetenv("SNAKE_PADDING")
	})

	cfg, err := Load(nil, path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 18, cfg.FontSize)
	assert.Equal(t, 40, cfg.Padding)
}

func TestLoad_BadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "grid env not a number", env: map[string]string{"SNAKE_GRID_SIZE": "big"}},
		{name: "bad tick env", env: map[string]string{"SNAKE_TICK": "soon"}},
		{name: "unknown flag", args: []string{"-colour", "red"}},
		{name: "grid too small", args: []string{"-grid", "1", "-spawn-x", "0", "-spawn-y", "0"}},
		{name: "spawn outside grid", args: []string{"-grid", "5", "-spawn-x", "5"}},
		{name: "zero tick", args: []string{"-tick", "0s"}},
		{name: "padding eats window", args: []string{"-width", "200", "-padding", "100"}},
		{name: "zero font", args: []string{"-font-size", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}
