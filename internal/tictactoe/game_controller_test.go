package tictactoe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/board"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	mockedTerminal "github.com/rocketscienceinc/tictactoe/mocks/tictactoe"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

var errKeyboardUnplugged = errors.New("keyboard unplugged")

func newController(t *testing.T) (*GameController, *entity.Player, *entity.Player) {
	t.Helper()

	_, st := suite.New(t)

	alice := entity.NewPlayer("Alice", board.X)
	bob := entity.NewPlayer("Bob", board.O)

	controller, err := NewGameController(st.Logger, board.New(), alice, bob)
	require.NoError(t, err)

	return controller, alice, bob
}

func TestNewGameController(t *testing.T) {
	_, st := suite.New(t)

	t.Run("Rejects players sharing a mark", func(t *testing.T) {
		_, err := NewGameController(st.Logger, board.New(), entity.NewPlayer("A", board.X), entity.NewPlayer("B", board.X))

		require.ErrorIs(t, err, ErrInvalidPlayers)
	})

	t.Run("Rejects a player without a mark", func(t *testing.T) {
		_, err := NewGameController(st.Logger, board.New(), entity.NewPlayer("A", board.X), entity.NewPlayer("B", board.None))

		require.ErrorIs(t, err, ErrInvalidPlayers)
	})
}

func TestGameController_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		controller, _, bob := newController(t)

		// When: player X makes a turn
		err := controller.MakeTurn(board.X, 0, 0)
		require.NoError(t, err)

		// Then: the mark is on the board and it is O's turn
		assert.Equal(t, board.X, controller.Board().Moves()[0][0])
		assert.Equal(t, bob, controller.CurrentPlayer())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: player X took cell (0,0)
		controller, _, bob := newController(t)
		require.NoError(t, controller.MakeTurn(board.X, 0, 0))

		// When: player O tries to make a move to the same square
		err := controller.MakeTurn(board.O, 0, 0)

		// Then: an error ErrCellOccupied must be returned and the turn stays with O
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, bob, controller.CurrentPlayer())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		controller, alice, _ := newController(t)

		// When: player O tries to make a move when it is player X's turn
		err := controller.MakeTurn(board.O, 1, 1)

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, alice, controller.CurrentPlayer())
		assert.True(t, controller.Board().OpenSpot(1, 1))
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		controller, _, _ := newController(t)

		err := controller.MakeTurn(board.X, 3, 0)

		assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: player X completes the top row
		controller, alice, _ := newController(t)
		for _, move := range [][3]any{{board.X, 0, 0}, {board.O, 0, 1}, {board.X, 1, 0}, {board.O, 1, 1}, {board.X, 2, 0}} {
			require.NoError(t, controller.MakeTurn(move[0].(board.Mark), move[1].(int), move[2].(int)))
		}

		// When: player O tries to move after the game is over
		err := controller.MakeTurn(board.O, 2, 2)

		// Then: ErrGameFinished is returned and X is the winner
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		result := controller.Result()
		assert.Equal(t, alice, result.Winner)
		assert.False(t, result.Draw)
	})
}

func TestGameController_Play(t *testing.T) {
	t.Run("Plays until a player wins", func(t *testing.T) {
		ctx, _ := suite.New(t)

		// Given: a terminal feeding moves where O wins the middle column
		controller, alice, bob := newController(t)
		terminal := mockedTerminal.NewMockTerminal(t)

		terminal.EXPECT().Render(controller.Board()).Return()
		moves := []struct {
			player *entity.Player
			x, y   int
		}{
			{alice, 0, 0}, {bob, 1, 0}, {alice, 2, 2}, {bob, 1, 1}, {alice, 0, 2}, {bob, 1, 2},
		}
		for _, move := range moves {
			terminal.EXPECT().ReadMove(ctx, controller.Board(), move.player).Return(move.x, move.y, nil).Once()
		}

		// When: the game is played
		result, err := controller.Play(ctx, terminal)

		// Then: O wins
		require.NoError(t, err)
		assert.Equal(t, bob, result.Winner)
		assert.False(t, result.Draw)
		assert.Equal(t, board.StateWon, result.Board.State())
	})

	t.Run("Plays until the board is drawn", func(t *testing.T) {
		ctx, _ := suite.New(t)

		// Given: moves that fill the board without a line
		controller, _, _ := newController(t)
		terminal := mockedTerminal.NewMockTerminal(t)

		terminal.EXPECT().Render(mock.Anything).Return()
		for _, move := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {0, 1}, {2, 1}, {1, 2}, {0, 2}, {2, 2}} {
			terminal.EXPECT().ReadMove(ctx, mock.Anything, mock.Anything).Return(move[0], move[1], nil).Once()
		}

		// When: the game is played
		result, err := controller.Play(ctx, terminal)

		// Then: the game is a draw
		require.NoError(t, err)
		assert.Nil(t, result.Winner)
		assert.True(t, result.Draw)
	})

	t.Run("Stops when input fails", func(t *testing.T) {
		ctx, _ := suite.New(t)

		controller, _, _ := newController(t)
		terminal := mockedTerminal.NewMockTerminal(t)

		terminal.EXPECT().Render(mock.Anything).Return().Once()
		terminal.EXPECT().ReadMove(ctx, mock.Anything, mock.Anything).Return(0, 0, errKeyboardUnplugged).Once()

		result, err := controller.Play(ctx, terminal)

		require.ErrorIs(t, err, errKeyboardUnplugged)
		assert.Nil(t, result.Winner)
		assert.False(t, result.Draw)
	})
}
