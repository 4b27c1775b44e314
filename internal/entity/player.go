package entity

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	GameID string `json:"game_id,omitempty"`
}
