package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	List(ctx context.Context) ([]*entity.Player, error)
}

// memPlayer keeps player records for the lifetime of the process.
type memPlayer struct {
	players map[string]entity.Player
	order   []string
}

func NewPlayerRepository() PlayerRepository {
	return &memPlayer{
		players: make(map[string]entity.Player),
	}
}

func (that *memPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	if player == nil || player.ID == "" {
		return fmt.Errorf("failed to set player: %w: empty id", apperror.ErrPlayerNotFound)
	}

	if _, ok := that.players[player.ID]; !ok {
		that.order = append(that.order, player.ID)
	}
	that.players[player.ID] = *player

	return nil
}

func (that *memPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	player, ok := that.players[id]
	if !ok {
		return nil, apperror.ErrPlayerNotFound
	}

	return &player, nil
}

// List returns players ordered by wins, then by registration order.
func (that *memPlayer) List(ctx context.Context) ([]*entity.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	players := make([]*entity.Player, 0, len(that.order))
	for _, id := range that.order {
		player := that.players[id]
		players = append(players, &player)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Wins > players[j].Wins
	})

	return players, nil
}
