package config

import (
	"flag"
	"gridsnake/game/types"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds everything the binary can be tuned with. Values come from
// defaults, then SNAKE_* environment variables (optionally loaded from .env),
// then command line flags.
type Config struct {
	GridSize     uint
	SpawnX       uint
	SpawnY       uint
	TickInterval time.Duration
	WindowWidth  int
	WindowHeight int
	Padding      int
	FontSize     int
	Seed         uint64
	LogLevel     string
}

func Default() Config {
	return Config{
		GridSize:     types.DefaultGridSize,
		SpawnX:       types.DefaultSnakePos.X,
		SpawnY:       types.DefaultSnakePos.Y,
		TickInterval: 100 * time.Millisecond,
		WindowWidth:  1000,
		WindowHeight: 1000,
		Padding:      100,
		FontSize:     30,
		LogLevel:     "info",
	}
}

// Load reads .env files (missing files are fine), the environment and args.
func Load(args []string, envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, "load %s", f)
		}
	}

	cfg := Default()
	if err := cfg.fromEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.fromFlags(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fromEnv(getenv func(string) string) error {
	uints := map[string]*uint{
		"SNAKE_GRID_SIZE": &c.GridSize,
		"SNAKE_SPAWN_X":   &c.SpawnX,
		"SNAKE_SPAWN_Y":   &c.SpawnY,
	}
	for k, dst := range uints {
		v := getenv(k)
		if v == "" {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return errors.Wrapf(err, "parse %s", k)
		}
		*dst = uint(n)
	}

	ints := map[string]*int{
		"SNAKE_WINDOW_WIDTH":  &c.WindowWidth,
		"SNAKE_WINDOW_HEIGHT": &c.WindowHeight,
		"SNAKE_PADDING":       &c.Padding,
		"SNAKE_FONT_SIZE":     &c.FontSize,
	}
	for k, dst := range ints {
		v := getenv(k)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", k)
		}
		*dst = n
	}

	if v := getenv("SNAKE_TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "parse SNAKE_TICK")
		}
		c.TickInterval = d
	}
	if v := getenv("SNAKE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "parse SNAKE_SEED")
		}
		c.Seed = n
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) fromFlags(args []string) error {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.UintVar(&c.GridSize, "grid", c.GridSize, "Number of cells per board side")
	fs.UintVar(&c.SpawnX, "spawn-x", c.SpawnX, "Snake spawn column")
	fs.UintVar(&c.SpawnY, "spawn-y", c.SpawnY, "Snake spawn row")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "Time between simulation ticks")
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "Window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "Window height in pixels")
	fs.IntVar(&c.Padding, "padding", c.Padding, "Space around the board in pixels")
	fs.IntVar(&c.FontSize, "font-size", c.FontSize, "Overlay text size")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Food placement seed (0 = time based)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "zerolog level")

	return errors.Wrap(fs.Parse(args), "parse flags")
}

func (c Config) Validate() error {
	switch {
	case c.GridSize < 2:
		return errors.Errorf("grid size must be at least 2, got %d", c.GridSize)
	case c.SpawnX >= c.GridSize || c.SpawnY >= c.GridSize:
		return errors.Errorf("spawn (%d,%d) outside a %d grid", c.SpawnX, c.SpawnY, c.GridSize)
	case c.TickInterval <= 0:
		return errors.Errorf("tick interval must be positive, got %s", c.TickInterval)
	case c.WindowWidth <= 2*c.Padding || c.WindowHeight <= 2*c.Padding:
		return errors.Errorf("window %dx%d too small for padding %d", c.WindowWidth, c.WindowHeight, c.Padding)
	case c.FontSize <= 0:
		return errors.Errorf("font size must be positive, got %d", c.FontSize)
	}
	return nil
}

// Spawn is the configured snake spawn cell.
func (c Config) Spawn() types.GridCoord {
	return types.GridCoord{X: c.SpawnX, Y: c.SpawnY}
}
