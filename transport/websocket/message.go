package websocket

import (
	"encoding/json"

	"github.com/iamshelldy/runfromcats-backend/internal/catsrun"
	"github.com/iamshelldy/runfromcats-backend/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ConnectPayload struct {
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name,omitempty"`
}

type NewGamePayload struct {
	PlayerID string `json:"player_id"`
}

type TurnPayload struct {
	PlayerID  string `json:"player_id"`
	Direction string `json:"direction"`
}

// GameState is the renderable view of a game: raw symbol tags, no
// presentation formatting.
type GameState struct {
	ID       string     `json:"id"`
	Status   string     `json:"status"`
	Turns    int        `json:"turns"`
	Outcome  string     `json:"outcome,omitempty"`
	Snapshot [][]string `json:"snapshot"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *GameState     `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newGameState(game *entity.Game, outcome catsrun.Outcome) *GameState {
	return &GameState{
		ID:       game.ID,
		Status:   game.Status,
		Turns:    game.Turns,
		Outcome:  string(outcome),
		Snapshot: game.Board.Snapshot(),
	}
}
