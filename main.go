package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"snake-arena/ai"
	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/ui"
)

type cliFlags struct {
	configPath string
	envFile    string
	speed      int
	apples     int
	size       int
	seed       int64
	renderer   string
	logLevel   string
	logFile    string
}

func parseFlags(args []string) (cliFlags, map[string]bool, error) {
	var f cliFlags
	fs := flag.NewFlagSet("snake-arena", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.envFile, "env", ".env", "dotenv file with SNAKE_* overrides (optional)")
	fs.IntVar(&f.speed, "speed", 250, "Delay between ticks in milliseconds")
	fs.IntVar(&f.apples, "apples", 1, "Apples placed at the start of every tick")
	fs.IntVar(&f.size, "size", 20, "Board side length")
	fs.Int64Var(&f.seed, "seed", 0, "Apple placement seed (0 = time based)")
	fs.StringVar(&f.renderer, "renderer", config.RendererText, "text, terminal, raylib or none")
	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// loadConfig layers defaults, the YAML file, the env file, the process
// environment and finally explicitly set flags.
func loadConfig(f cliFlags, set map[string]bool) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	env, err := config.LoadEnv(f.envFile)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return cfg, err
	}
	if set["speed"] {
		cfg.TickDelayMS = f.speed
	}
	if set["apples"] {
		cfg.NewApplesEachStep = f.apples
	}
	if set["size"] {
		cfg.BoardSize = f.size
		cfg.Layout = nil
	}
	if set["seed"] {
		cfg.Seed = f.seed
	}
	if set["renderer"] {
		cfg.Renderer = f.renderer
	}
	if set["log-level"] {
		cfg.LogLevel = f.logLevel
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, logFile string) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	switch {
	case logFile != "":
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = file, file
	case cfg.Renderer == config.RendererTerminal:
		// stderr shares the terminal with the tcell screen
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "snake-arena:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	f, set, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f, set)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg, f.logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	board, err := cfg.Board()
	if err != nil {
		return err
	}
	agents, err := ai.NewLineup(cfg.Agents, time.Now)
	if err != nil {
		return err
	}

	opts := game.Options{
		Board:             board,
		Agents:            agents,
		NewApplesEachStep: cfg.NewApplesEachStep,
		TickDelay:         cfg.TickDelay(),
		Logger:            logger,
	}
	if cfg.Seed != 0 {
		opts.Rand = manager.NewSeededSource(uint64(cfg.Seed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Renderer {
	case config.RendererText:
		r := ui.NewTextRenderer(os.Stdout)
		opts.Drawer, opts.Reporter = r, r
	case config.RendererTerminal:
		r, err := ui.OpenTerminal("snake arena")
		if err != nil {
			return err
		}
		defer r.Close()
		opts.Drawer, opts.Reporter = r, r
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go r.PollQuit(cancel)
		if err := runGame(ctx, opts, logger, cfg); err != nil {
			return err
		}
		// keep the final board up until the user quits
		<-ctx.Done()
		return nil
	case config.RendererRaylib:
		r := ui.NewRenderer("snake arena")
		opts.Drawer, opts.Reporter = r, r
		g, err := game.NewGame(opts)
		if err != nil {
			return err
		}
		logStart(logger, g, cfg)
		g.Start()
		go func() {
			<-ctx.Done()
			g.Stop()
		}()
		// raylib must own the main goroutine
		r.Loop(g.Done())
		g.Stop()
		return nil
	}
	return runGame(ctx, opts, logger, cfg)
}

func runGame(ctx context.Context, opts game.Options, logger *slog.Logger, cfg config.Config) error {
	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	logStart(logger, g, cfg)
	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func logStart(logger *slog.Logger, g *game.Game, cfg config.Config) {
	logger.Info("run configured",
		"run", g.ID,
		"agents", cfg.Agents,
		"seed", cfg.Seed,
		"renderer", cfg.Renderer)
}
