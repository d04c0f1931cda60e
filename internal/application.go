package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/console"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the application on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play runs a game session reading moves from in and writing the board to out.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	playerRepo := repository.NewPlayerRepository()
	terminal := console.New(logger, in, out)
	gameManager := usecase.NewGameManager(logger, playerRepo, terminal, usecase.Options{
		BoardSize: conf.BoardSize,
		Rounds:    conf.Rounds,
		SkipNames: conf.SkipNames,
		NameX:     conf.PlayerX.Name,
		NameO:     conf.PlayerO.Name,
	})

	log.Info("Starting game session", "board_size", conf.BoardSize, "rounds", conf.Rounds)

	if err := gameManager.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		return fmt.Errorf("game session failed: %w", err)
	}

	return nil
}
