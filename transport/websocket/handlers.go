package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/iamshelldy/runfromcats-backend/internal/apperror"
)

// handleConnect - resolves (or creates) the session's player and, when a
// saved game exists, returns it so the client can resume.
func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, message *Message) error {
	var payload ConnectPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	player, err := that.gameManager.GetOrCreatePlayer(ctx, payload.PlayerID, payload.Name)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	response := ResponsePayload{Player: player}

	game, err := that.gameManager.CurrentGame(ctx, player.ID)
	switch {
	case err == nil:
		response.Game = newGameState(game, "")
	case errors.Is(err, apperror.ErrNoActiveGame):
		// nothing to resume
	default:
		return fmt.Errorf("failed to get current game: %w", err)
	}

	return that.sendMessage(conn, message.Action, response)
}

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, message *Message) error {
	var payload NewGamePayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	game, err := that.gameManager.NewGame(ctx, payload.PlayerID)
	if err != nil {
		return that.sendMessage(conn, message.Action, ResponsePayload{Error: err.Error()})
	}

	return that.sendMessage(conn, message.Action, ResponsePayload{Game: newGameState(game, "")})
}

func (that *Server) handleGameTurn(ctx context.Context, conn *websocket.Conn, message *Message) error {
	var payload TurnPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	game, outcome, err := that.gameManager.ApplyTurn(ctx, payload.PlayerID, payload.Direction)

	switch {
	case errors.Is(err, apperror.ErrInvalidDirection),
		errors.Is(err, apperror.ErrNoActiveGame),
		errors.Is(err, apperror.ErrGameFinished):
		return that.sendMessage(conn, message.Action, ResponsePayload{Error: err.Error()})
	case err != nil:
		return fmt.Errorf("failed to apply turn: %w", err)
	}

	return that.sendMessage(conn, message.Action, ResponsePayload{Game: newGameState(game, outcome)})
}
