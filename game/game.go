package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"snake-arena/ai"
	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/google/uuid"
)

// Drawer renders a board snapshot. It must not modify the board or keep it
// past the call; implementations that render later should Clone it.
type Drawer interface {
	Draw(board *entity.Board)
}

// Reporter receives per-player standings after every tick.
type Reporter interface {
	UpdateApples(player types.Player, count int)
	UpdateLost(player types.Player, lost bool)
}

type Options struct {
	Board             *entity.Board
	Agents            []ai.Behavior // one per player, in turn order
	NewApplesEachStep int
	TickDelay         time.Duration
	Rand              manager.Source
	Drawer            Drawer
	Reporter          Reporter
	Scheduler         Scheduler
	Logger            *slog.Logger
}

// Game runs the arena: each tick seeds apples, then polls every living
// agent in the fixed order A, B, C, D against the board as already changed
// by the agents before it.
type Game struct {
	ID        string
	StartTime time.Time

	mu         sync.Mutex
	board      *entity.Board
	snakes     [types.NumPlayers]*entity.Snake
	agents     [types.NumPlayers]ai.Behavior
	collisions *manager.CollisionManager
	food       *manager.FoodManager
	stats      *manager.StateManager
	drawer     Drawer
	reporter   Reporter
	scheduler  Scheduler
	tickDelay  time.Duration
	tick       int
	started    bool

	stopped  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
	logger   *slog.Logger
}

func NewGame(opts Options) (*Game, error) {
	if opts.Board == nil {
		return nil, errors.New("game: board is required")
	}
	if len(opts.Agents) != types.NumPlayers {
		return nil, fmt.Errorf("game: need %d agents, got %d", types.NumPlayers, len(opts.Agents))
	}
	for i, agent := range opts.Agents {
		if agent == nil {
			return nil, fmt.Errorf("game: agent for player %v is nil", types.Players[i])
		}
	}
	if opts.TickDelay < 0 {
		return nil, fmt.Errorf("game: negative tick delay %v", opts.TickDelay)
	}

	g := &Game{
		ID:         uuid.New().String(),
		board:      opts.Board,
		collisions: manager.NewCollisionManager(opts.Board),
		food:       manager.NewFoodManager(opts.NewApplesEachStep, opts.Rand),
		stats:      manager.NewStateManager(),
		drawer:     opts.Drawer,
		reporter:   opts.Reporter,
		scheduler:  opts.Scheduler,
		tickDelay:  opts.TickDelay,
		done:       make(chan struct{}),
		logger:     opts.Logger,
	}
	if g.drawer == nil {
		g.drawer = nopDrawer{}
	}
	if g.scheduler == nil {
		g.scheduler = TimerScheduler{}
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	g.logger = g.logger.With("run", g.ID)
	copy(g.agents[:], opts.Agents)

	starts := entity.StartPositions(opts.Board.Size())
	for i, player := range types.Players {
		g.snakes[i] = entity.NewSnake(player, starts[i])
		g.board.Set(starts[i], g.snakes[i].Mark())
	}
	return g, nil
}

// Start draws the initial board and schedules the first tick. Calling it
// again has no effect.
func (g *Game) Start() {
	g.mu.Lock()
	if g.started {
		g.mu.Unlock()
		return
	}
	g.started = true
	g.StartTime = time.Now()
	g.logger.Info("run started",
		"board_size", g.board.Size(),
		"tick_delay", g.tickDelay,
		"new_apples_each_step", g.food.NewApplesEachStep())
	g.drawer.Draw(g.board)
	g.mu.Unlock()

	g.scheduler.ScheduleNextUpdate(g.tickDelay, g.scheduledStep)
}

func (g *Game) scheduledStep() {
	g.Step()
}

// Step runs one tick and, while any agent is alive, schedules the next one.
// It reports whether the run is still going.
func (g *Game) Step() bool {
	if g.stopped.Load() {
		return false
	}

	g.mu.Lock()
	running := g.anyAlive()
	if running {
		running = g.runGameStep()
	}
	g.mu.Unlock()

	if !running {
		g.finish()
		return false
	}
	if g.stopped.Load() {
		return false
	}
	g.scheduler.ScheduleNextUpdate(g.tickDelay, g.scheduledStep)
	return true
}

func (g *Game) runGameStep() bool {
	g.tick++
	if placed := g.food.Update(g.board); placed > 0 {
		g.logger.Debug("apples placed", "tick", g.tick, "count", placed)
	}
	g.rotatePlayersInOrder()
	g.drawer.Draw(g.board)
	g.updateSnakeStats()
	return g.anyAlive()
}

func (g *Game) rotatePlayersInOrder() {
	for i, snake := range g.snakes {
		if snake.Lost {
			continue
		}
		view := entity.GetScreenPart(g.board, snake.Position)
		motion := g.agents[i].AgentMove(view)
		res := g.collisions.HandleMovement(snake, motion, g.tick)
		if snake.Lost {
			g.stats.RecordElimination(snake.Player, res.Collision, g.tick)
			g.logger.Info("player eliminated",
				"player", snake.Player.String(),
				"tick", g.tick,
				"motion", motion.String(),
				"collision", res.Collision.String(),
				"apples", snake.Apples)
		} else if res.AteApple {
			g.logger.Debug("apple eaten", "player", snake.Player.String(), "tick", g.tick, "apples", snake.Apples)
		}
	}
}

func (g *Game) updateSnakeStats() {
	g.stats.SetTicks(g.tick)
	for _, snake := range g.snakes {
		g.stats.UpdateLost(snake.Player, snake.Lost)
		g.stats.UpdateApples(snake.Player, snake.Apples)
		if g.reporter != nil {
			g.reporter.UpdateLost(snake.Player, snake.Lost)
			g.reporter.UpdateApples(snake.Player, snake.Apples)
		}
	}
}

func (g *Game) anyAlive() bool {
	for _, snake := range g.snakes {
		if !snake.Lost {
			return true
		}
	}
	return false
}

func (g *Game) finish() {
	g.doneOnce.Do(func() {
		attrs := []any{
			"ticks", g.stats.Ticks(),
			"stopped", g.stopped.Load(),
		}
		if !g.StartTime.IsZero() {
			attrs = append(attrs, "elapsed", time.Since(g.StartTime).Round(time.Millisecond))
		}
		for _, p := range g.stats.Summary() {
			attrs = append(attrs, slog.Group(p.Player.String(),
				"apples", p.Apples,
				"lost", p.Lost,
				"lost_at", p.LostAt,
				"collision", p.Collision.String()))
		}
		g.logger.Info("run finished", attrs...)
		close(g.done)
	})
}

// Stop prevents any further tick from being scheduled. A tick already in
// progress completes.
func (g *Game) Stop() {
	g.stopped.Store(true)
	g.finish()
}

// Done is closed once every agent is lost or Stop is called.
func (g *Game) Done() <-chan struct{} {
	return g.done
}

// Run starts the game and blocks until it finishes or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	g.Start()
	select {
	case <-g.done:
		return nil
	case <-ctx.Done():
		g.Stop()
		return ctx.Err()
	}
}

// Over reports whether every agent is lost.
func (g *Game) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.anyAlive()
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tick
}

// Board returns a copy of the current board.
func (g *Game) Board() *entity.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}

// Snakes returns copies of the agent records in turn order.
func (g *Game) Snakes() []entity.Snake {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]entity.Snake, len(g.snakes))
	for i, s := range g.snakes {
		out[i] = *s
	}
	return out
}

func (g *Game) Stats() *manager.StateManager {
	return g.stats
}

type nopDrawer struct{}

func (nopDrawer) Draw(*entity.Board) {}
