package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is the per-session aggregate: one board, mutated turn by turn until
// the cats catch up. Serialized as JSON by the repository layer.
type Game struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Turns  int    `json:"turns"`
	Board  *Board `json:"board"`
}

func NewGame(id string, board *Board) *Game {
	return &Game{
		ID:     id,
		Status: StatusOngoing,
		Board:  board,
	}
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}
