package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iamshelldy/runfromcats-backend/internal/apperror"
	"github.com/iamshelldy/runfromcats-backend/internal/catsrun"
	"github.com/iamshelldy/runfromcats-backend/internal/entity"
	"github.com/iamshelldy/runfromcats-backend/internal/pkg"
	"github.com/iamshelldy/runfromcats-backend/internal/repository"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	Find(ctx context.Context, sessionID string) (*entity.User, error)
}

type turnEngine interface {
	NewBoard() (*entity.Board, error)
	ApplyTurn(game *entity.Game, dir entity.Direction) (catsrun.Outcome, error)
}

// GameManager orchestrates sessions around the turn engine: it loads board
// state, applies one turn, persists the result and cleans up finished games.
// The board itself has no locking, so turns are serialized per session here.
type GameManager struct {
	logger *slog.Logger
	engine turnEngine

	playerRepo playerRepo
	gameRepo   gameRepo
	userRepo   userRepo

	sessions sync.Map // session id -> *sync.Mutex
}

func NewGameManager(logger *slog.Logger, engine turnEngine, playerRepo playerRepo, gameRepo gameRepo, userRepo userRepo) *GameManager {
	return &GameManager{
		logger: logger,
		engine: engine,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		userRepo:   userRepo,
	}
}

// GetOrCreatePlayer - resolves a session to a player, creating one when the
// id is empty or unknown. First-seen sessions are recorded in the user store.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id, name string) (*entity.Player, error) {
	if id == "" {
		return that.createPlayer(ctx, pkg.GenerateNewSessionID(), name)
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		return that.createPlayer(ctx, id, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// NewGame - starts a fresh game for the session, replacing any existing one.
func (that *GameManager) NewGame(ctx context.Context, playerID string) (*entity.Game, error) {
	unlock := that.lockSession(playerID)
	defer unlock()

	log := that.logger.With("method", "NewGame")

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		if err = that.gameRepo.DeleteByID(ctx, player.GameID); err != nil {
			log.Error("failed to delete previous game", "error", err)
		}
	}

	board, err := that.engine.NewBoard()
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	game := entity.NewGame(pkg.GenerateGameID(), board)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = game.ID
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	log.Info("new game started", "player", playerID, "game", game.ID)

	return game, nil
}

// CurrentGame - the session's active game, or ErrNoActiveGame.
func (that *GameManager) CurrentGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGame
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, apperror.ErrNoActiveGame
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// ApplyTurn - validates the direction token, advances the session's game one
// turn and persists the result. Finished games are deleted and the player
// unlinked; the final state is still returned for rendering.
func (that *GameManager) ApplyTurn(ctx context.Context, playerID, direction string) (*entity.Game, catsrun.Outcome, error) {
	dir, err := entity.ParseDirection(direction)
	if err != nil {
		return nil, "", err
	}

	unlock := that.lockSession(playerID)
	defer unlock()

	game, err := that.CurrentGame(ctx, playerID)
	if err != nil {
		return nil, "", err
	}

	outcome, err := that.engine.ApplyTurn(game, dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to apply turn: %w", err)
	}

	if outcome == catsrun.OutcomeOver {
		that.cleanupGame(ctx, playerID, game)

		return game, outcome, nil
	}

	if outcome != catsrun.OutcomeBlocked {
		if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return nil, "", fmt.Errorf("failed to update game: %w", err)
		}
	}

	return game, outcome, nil
}

func (that *GameManager) createPlayer(ctx context.Context, id, name string) (*entity.Player, error) {
	log := that.logger.With("method", "createPlayer")

	player := &entity.Player{ID: id, Name: name}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	// The user record is greeting glue, not game state; losing it is not
	// worth failing the session over.
	if err := that.userRepo.Save(ctx, &entity.User{SessionID: id, Name: name}); err != nil {
		log.Error("failed to save user record", "error", err)
	}

	log.Info("player created", "player", id)

	return player, nil
}

func (that *GameManager) cleanupGame(ctx context.Context, playerID string, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		log.Error("failed to get player", "error", err)
		return
	}

	player.GameID = ""
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		log.Error("failed to update player", "error", err)
	}

	log.Info("game deleted", "game", game.ID)
}

func (that *GameManager) lockSession(id string) func() {
	value, _ := that.sessions.LoadOrStore(id, &sync.Mutex{})
	mu, _ := value.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}
