package catsrun

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/iamshelldy/runfromcats-backend/internal/apperror"
	"github.com/iamshelldy/runfromcats-backend/internal/entity"
)

// Outcome of a single turn as observed by the caller.
type Outcome string

const (
	// OutcomeContinuing - the turn completed and the game goes on.
	OutcomeContinuing Outcome = "continuing"
	// OutcomeOver - a cat reached a cell orthogonally adjacent to the player.
	OutcomeOver Outcome = "over"
	// OutcomeBlocked - the adjacent cell in the requested direction was
	// occupied; the board is untouched.
	OutcomeBlocked Outcome = "blocked"
)

// Config tunes board creation and per-turn spawning.
type Config struct {
	BoardSize        int
	InitialCats      int
	InitialObstacles int
	CatsPerTurn      int
	EdgeObstacles    int
}

func DefaultConfig() Config {
	return Config{
		BoardSize:        entity.DefaultBoardSize,
		InitialCats:      1,
		InitialObstacles: 3,
		CatsPerTurn:      1,
		EdgeObstacles:    2,
	}
}

func (that Config) withDefaults() Config {
	defaults := DefaultConfig()
	if that.BoardSize == 0 {
		that.BoardSize = defaults.BoardSize
	}
	if that.InitialCats == 0 {
		that.InitialCats = defaults.InitialCats
	}
	if that.InitialObstacles == 0 {
		that.InitialObstacles = defaults.InitialObstacles
	}
	if that.CatsPerTurn == 0 {
		that.CatsPerTurn = defaults.CatsPerTurn
	}
	if that.EdgeObstacles == 0 {
		that.EdgeObstacles = defaults.EdgeObstacles
	}

	return that
}

// Engine advances games turn by turn. It owns the randomness used for
// spawning; the rand source is not safe for concurrent use, so all turns
// are serialized behind a mutex.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	cfg Config
}

func New(rng *rand.Rand, cfg Config) *Engine {
	return &Engine{
		rng: rng,
		cfg: cfg.withDefaults(),
	}
}

// NewBoard - a fresh randomized board: empty grid, player at the center,
// then the configured cats and obstacles.
func (that *Engine) NewBoard() (*entity.Board, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	board, err := entity.NewBoard(that.cfg.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	board.SpawnCats(that.rng, that.cfg.InitialCats)
	board.SpawnObstacles(that.rng, that.cfg.InitialObstacles)

	return board, nil
}

// ApplyTurn - runs one full turn: clearance check, world shift, pursuit for
// every cat with early exit on capture, then one respawned cat. A blocked
// move short-circuits with the board untouched.
func (that *Engine) ApplyTurn(game *entity.Game, dir entity.Direction) (Outcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if game.IsFinished() {
		return "", apperror.ErrGameFinished
	}

	board := game.Board

	if !board.IsDirectionClear(dir) {
		return OutcomeBlocked, nil
	}

	board.ShiftWorld(that.rng, dir.Opposite(), that.cfg.EdgeObstacles)
	game.Turns++

	if captured := pursueCats(board); captured {
		game.Status = entity.StatusFinished
		return OutcomeOver, nil
	}

	board.SpawnCats(that.rng, that.cfg.CatsPerTurn)

	return OutcomeContinuing, nil
}
