package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"snake-arena/ai"
	"snake-arena/game/entity"
	"snake-arena/game/types"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Renderers accepted by the renderer setting.
const (
	RendererText     = "text"
	RendererTerminal = "terminal"
	RendererRaylib   = "raylib"
	RendererNone     = "none"
)

type Config struct {
	TickDelayMS       int      `yaml:"tick_delay_ms"`
	NewApplesEachStep int      `yaml:"new_apples_each_step"`
	BoardSize         int      `yaml:"board_size"`
	Layout            []string `yaml:"layout"`
	Seed              int64    `yaml:"seed"`
	Renderer          string   `yaml:"renderer"`
	Agents            []string `yaml:"agents"`
	LogLevel          string   `yaml:"log_level"`
}

func Default() Config {
	return Config{
		TickDelayMS:       250,
		NewApplesEachStep: 1,
		BoardSize:         20,
		Renderer:          RendererText,
		Agents:            append([]string(nil), ai.DefaultLineup...),
		LogLevel:          "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Environment keys read by ApplyEnv.
const (
	EnvTickDelayMS = "SNAKE_TICK_DELAY_MS"
	EnvNewApples   = "SNAKE_NEW_APPLES"
	EnvBoardSize   = "SNAKE_BOARD_SIZE"
	EnvSeed        = "SNAKE_SEED"
	EnvRenderer    = "SNAKE_RENDERER"
	EnvAgents      = "SNAKE_AGENTS"
	EnvLogLevel    = "SNAKE_LOG_LEVEL"
)

// LoadEnv reads envFile (a missing file is not an error) and overlays the
// process environment on top of it.
func LoadEnv(envFile string) (map[string]string, error) {
	env := map[string]string{}
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, key := range []string{EnvTickDelayMS, EnvNewApples, EnvBoardSize, EnvSeed, EnvRenderer, EnvAgents, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides fields that have a value in env.
func (c *Config) ApplyEnv(env map[string]string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvTickDelayMS, &c.TickDelayMS},
		{EnvNewApples, &c.NewApplesEachStep},
		{EnvBoardSize, &c.BoardSize},
	}
	for _, f := range ints {
		v, ok := env[f.key]
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, f.key, v, err)
		}
		*f.dst = n
	}
	if v := env[EnvSeed]; v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = n
	}
	if v := env[EnvRenderer]; v != "" {
		c.Renderer = strings.TrimSpace(v)
	}
	if v := env[EnvLogLevel]; v != "" {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v := env[EnvAgents]; v != "" {
		c.Agents = splitList(v)
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the settings a run depends on. Negative apple counts are
// allowed and simply place nothing.
func (c Config) Validate() error {
	var errs []error
	if c.TickDelayMS < 0 {
		errs = append(errs, fmt.Errorf("tick_delay_ms must be >= 0, got %d", c.TickDelayMS))
	}
	if len(c.Layout) == 0 && c.BoardSize < 1 {
		errs = append(errs, fmt.Errorf("board_size must be >= 1, got %d", c.BoardSize))
	}
	if len(c.Layout) > 0 {
		if _, err := entity.ParseBoard(c.Layout); err != nil {
			errs = append(errs, fmt.Errorf("layout: %v", err))
		}
	}
	if len(c.Agents) != types.NumPlayers {
		errs = append(errs, fmt.Errorf("agents must name %d strategies, got %d", types.NumPlayers, len(c.Agents)))
	}
	for _, name := range c.Agents {
		if !ai.Known(name) {
			errs = append(errs, fmt.Errorf("unknown agent %q (known: %s)", name, strings.Join(ai.Names(), ", ")))
		}
	}
	switch c.Renderer {
	case RendererText, RendererTerminal, RendererRaylib, RendererNone:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Renderer))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c Config) TickDelay() time.Duration {
	return time.Duration(c.TickDelayMS) * time.Millisecond
}

// Board builds the starting board from Layout, or an empty board of BoardSize.
func (c Config) Board() (*entity.Board, error) {
	if len(c.Layout) > 0 {
		return entity.ParseBoard(c.Layout)
	}
	return entity.NewBoard(c.BoardSize)
}

// ParseLogLevel maps debug, info, warn or error to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
