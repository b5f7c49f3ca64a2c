package entity

import "github.com/playgrid/tictactoe-backend/internal/pkg"

const botName = "Computer"

// Player pairs a free-form name with a mark. The mark never changes once the
// game assigns it.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Bot    bool   `json:"bot,omitempty"`
}

func NewBotPlayer(gameID string) *Player {
	return &Player{
		ID:     "bot:" + pkg.GenerateNewSessionID(),
		Name:   botName,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
