package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/board"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var ErrInvalidPlayers = errors.New("players need two distinct non-empty marks")

// Terminal is where a game is shown and where moves come from.
type Terminal interface {
	Render(b *board.Board)
	ReadMove(ctx context.Context, b *board.Board, player *entity.Player) (int, int, error)
}

type Result struct {
	Winner *entity.Player
	Draw   bool
	Board  *board.Board
}

// GameController runs a single game on one board. The first player moves first.
type GameController struct {
	logger  *slog.Logger
	board   *board.Board
	players [2]*entity.Player
	turn    int
}

func NewGameController(logger *slog.Logger, b *board.Board, first, second *entity.Player) (*GameController, error) {
	if first == nil || second == nil || first.Mark == board.None || second.Mark == board.None || first.Mark == second.Mark {
		return nil, ErrInvalidPlayers
	}

	return &GameController{
		logger:  logger.With("component", "game_controller"),
		board:   b,
		players: [2]*entity.Player{first, second},
	}, nil
}

func (that *GameController) Board() *board.Board {
	return that.board
}

func (that *GameController) CurrentPlayer() *entity.Player {
	return that.players[that.turn]
}

// MakeTurn places mark at (x, y) and passes the turn to the other player.
func (that *GameController) MakeTurn(mark board.Mark, x, y int) error {
	if that.board.GameOver() {
		return apperror.ErrGameFinished
	}

	if that.CurrentPlayer().Mark != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.board.PlaceMark(mark, x, y); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if !that.board.GameOver() {
		that.turn = 1 - that.turn
	}

	return nil
}

// Result describes the outcome so far; Winner is nil unless a line is complete.
func (that *GameController) Result() Result {
	result := Result{
		Draw:  that.board.Draw(),
		Board: that.board,
	}

	if winner := that.board.Winner(); winner != board.None {
		for _, player := range that.players {
			if player.Mark == winner {
				result.Winner = player
			}
		}
	}

	return result
}

// Play asks players for moves in turn until the board reaches a terminal state.
func (that *GameController) Play(ctx context.Context, terminal Terminal) (Result, error) {
	log := that.logger.With("method", "Play")

	for !that.board.GameOver() {
		terminal.Render(that.board)

		player := that.CurrentPlayer()
		x, y, err := terminal.ReadMove(ctx, that.board, player)
		if err != nil {
			return that.Result(), fmt.Errorf("failed to read move: %w", err)
		}

		if err = that.MakeTurn(player.Mark, x, y); err != nil {
			return that.Result(), fmt.Errorf("failed make turn: %w", err)
		}

		log.Debug("turn made", "player", player.ID, "mark", player.Mark, "x", x, "y", y)
	}

	terminal.Render(that.board)

	result := that.Result()
	log.Info("game finished", "state", that.board.State(), "draw", result.Draw)

	return result, nil
}
