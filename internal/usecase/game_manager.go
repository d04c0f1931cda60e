package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/board"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	defaultNameX = "Player 1"
	defaultNameO = "Player 2"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	List(ctx context.Context) ([]*entity.Player, error)
}

type terminal interface {
	tictactoe.Terminal
	ReadName(ctx context.Context, prompt, fallback string) (string, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
	Printf(format string, args ...any)
}

type Options struct {
	BoardSize int
	// Rounds stops the session after that many games; 0 asks after every game.
	Rounds    int
	SkipNames bool
	NameX     string
	NameO     string
}

// GameManager runs a session of consecutive games between the same two players.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	terminal   terminal
	options    Options
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, terminal terminal, options Options) *GameManager {
	if options.BoardSize == 0 {
		options.BoardSize = board.DefaultSize
	}
	if options.NameX == "" {
		options.NameX = defaultNameX
	}
	if options.NameO == "" {
		options.NameO = defaultNameO
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo: playerRepo,
		terminal:   terminal,
		options:    options,
	}
}

// Run registers the players and plays rounds until the players stop or input ends.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	players, err := that.RegisterPlayers(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrInputClosed) {
			return nil
		}
		return fmt.Errorf("failed to register players: %w", err)
	}

	for round := 1; ; round++ {
		log.Info("round started", "round", round)

		if _, err = that.PlayRound(ctx, players[0], players[1]); err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				log.Info("input closed, ending session", "round", round)
				break
			}
			return fmt.Errorf("failed to play round %d: %w", round, err)
		}

		more, err := that.anotherRound(ctx, round)
		if err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				break
			}
			return fmt.Errorf("failed to ask for another round: %w", err)
		}
		if !more {
			break
		}
	}

	if err = that.PrintScoreboard(ctx); err != nil {
		return fmt.Errorf("failed to print scoreboard: %w", err)
	}

	return nil
}

// RegisterPlayers creates the X and O players and stores them.
func (that *GameManager) RegisterPlayers(ctx context.Context) ([2]*entity.Player, error) {
	var players [2]*entity.Player

	nameX, nameO := that.options.NameX, that.options.NameO
	if !that.options.SkipNames {
		var err error
		if nameX, err = that.terminal.ReadName(ctx, "Name for X", nameX); err != nil {
			return players, fmt.Errorf("failed to read name: %w", err)
		}
		if nameO, err = that.terminal.ReadName(ctx, "Name for O", nameO); err != nil {
			return players, fmt.Errorf("failed to read name: %w", err)
		}
	}

	players[0] = entity.NewPlayer(nameX, board.X)
	players[1] = entity.NewPlayer(nameO, board.O)

	for _, player := range players {
		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return players, fmt.Errorf("failed to create player: %w", err)
		}
	}

	return players, nil
}

// PlayRound plays one game on a fresh board and records the outcome for both players.
func (that *GameManager) PlayRound(ctx context.Context, first, second *entity.Player) (tictactoe.Result, error) {
	log := that.logger.With("method", "PlayRound")

	b, err := board.NewWithSize(that.options.BoardSize)
	if err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to create board: %w", err)
	}

	controller, err := tictactoe.NewGameController(that.logger, b, first, second)
	if err != nil {
		return tictactoe.Result{}, fmt.Errorf("failed to create game: %w", err)
	}

	result, err := controller.Play(ctx, that.terminal)
	if err != nil {
		return result, fmt.Errorf("failed to play game: %w", err)
	}

	if result.Draw {
		that.terminal.Printf("It's a draw!\n")
	} else {
		that.terminal.Printf("%s wins!\n", result.Winner)
	}

	for _, player := range []*entity.Player{first, second} {
		player.Record(b.Winner())
		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return result, fmt.Errorf("failed to update player: %w", err)
		}
	}

	log.Debug("round recorded", "winner", b.Winner(), "draw", result.Draw)

	return result, nil
}

func (that *GameManager) PrintScoreboard(ctx context.Context) error {
	players, err := that.playerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list players: %w", err)
	}

	that.terminal.Printf("\nScoreboard\n")
	for _, player := range players {
		that.terminal.Printf("  %s: %d wins, %d losses, %d draws\n", player, player.Wins, player.Losses, player.Draws)
	}

	return nil
}

func (that *GameManager) anotherRound(ctx context.Context, played int) (bool, error) {
	if that.options.Rounds > 0 {
		return played < that.options.Rounds, nil
	}

	return that.terminal.Confirm(ctx, "Play again?")
}
