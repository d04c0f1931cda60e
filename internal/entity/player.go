package entity

import (
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/board"
)

type Player struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Mark   board.Mark `json:"mark,omitempty"`
	Wins   int        `json:"wins"`
	Losses int        `json:"losses"`
	Draws  int        `json:"draws"`
}

func NewPlayer(name string, mark board.Mark) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Mark: mark,
	}
}

// Record applies the outcome of a finished board to the player's tally.
func (that *Player) Record(winner board.Mark) {
	switch winner {
	case board.None:
		that.Draws++
	case that.Mark:
		that.Wins++
	default:
		that.Losses++
	}
}

func (that *Player) String() string {
	return that.Name + " (" + string(that.Mark) + ")"
}
