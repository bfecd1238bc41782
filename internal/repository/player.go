package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"guildwar-tracker/internal/db"
	"guildwar-tracker/internal/domain"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

type CreatePlayerParams struct {
	Name     string
	GameID   string
	TeamID   int64
	SeasonID int64
}

func (r *PlayerRepository) Create(ctx context.Context, params CreatePlayerParams) (*domain.Player, error) {
	player, err := r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		Name:     params.Name,
		GameID:   nullString(params.GameID),
		TeamID:   nullInt64(params.TeamID),
		SeasonID: nullInt64(params.SeasonID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return playerToDomain(player), nil
}

func (r *PlayerRepository) Get(ctx context.Context, id int64) (*domain.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return playerToDomain(player), nil
}

// GetByGameID looks up the player holding an in-game identifier, for
// uniqueness checks on create and update.
func (r *PlayerRepository) GetByGameID(ctx context.Context, gameID string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByGameID(ctx, nullString(gameID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by game id: %w", err)
	}
	return playerToDomain(player), nil
}

// List filters by status unless status is empty, and by home season unless
// seasonID is zero.
func (r *PlayerRepository) List(ctx context.Context, status domain.PlayerStatus, seasonID int64) ([]domain.Player, error) {
	var (
		players []db.Player
		err     error
	)
	switch {
	case seasonID != 0 && status != "":
		players, err = r.queries.ListPlayersBySeasonAndStatus(ctx, db.ListPlayersBySeasonAndStatusParams{
			SeasonID: nullInt64(seasonID),
			Status:   string(status),
		})
	case seasonID != 0:
		players, err = r.queries.ListPlayersBySeason(ctx, nullInt64(seasonID))
	case status != "":
		players, err = r.queries.ListPlayersByStatus(ctx, string(status))
	default:
		players, err = r.queries.ListPlayers(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	out := make([]domain.Player, 0, len(players))
	for _, p := range players {
		out = append(out, *playerToDomain(p))
	}
	return out, nil
}

type UpdatePlayerParams struct {
	GameID   string
	SeasonID int64
}

func (r *PlayerRepository) Update(ctx context.Context, id int64, params UpdatePlayerParams) (*domain.Player, error) {
	player, err := r.queries.UpdatePlayer(ctx, db.UpdatePlayerParams{
		GameID:   nullString(params.GameID),
		SeasonID: nullInt64(params.SeasonID),
		ID:       id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return playerToDomain(player), nil
}

func (r *PlayerRepository) UpdateStatus(ctx context.Context, id int64, status domain.PlayerStatus) (*domain.Player, error) {
	player, err := r.queries.UpdatePlayerStatus(ctx, db.UpdatePlayerStatusParams{
		Status: string(status),
		ID:     id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update player status: %w", err)
	}
	return playerToDomain(player), nil
}

// Delete removes the player along with its roster and participation
// references, in one transaction.
func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeleteParticipantsByPlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player participations: %w", err)
	}
	if err := qtx.DeleteRosterSlotsByPlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player roster slots: %w", err)
	}
	if err := qtx.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit player delete: %w", err)
	}
	r.logger.Debug().Int64("player_id", id).Msg("player deleted")
	return nil
}

// Seasons returns the ids of every season the player touches through its home
// season, roster membership, or battle participation.
func (r *PlayerRepository) Seasons(ctx context.Context, player *domain.Player) ([]int64, error) {
	seen := map[int64]bool{}
	if player.SeasonID != 0 {
		seen[player.SeasonID] = true
	}

	rosterSeasons, err := r.queries.ListPlayerRosterSeasons(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster seasons: %w", err)
	}
	for _, id := range rosterSeasons {
		seen[id] = true
	}

	battleSeasons, err := r.queries.ListPlayerBattleSeasons(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list battle seasons: %w", err)
	}
	for _, id := range battleSeasons {
		if id.Valid {
			seen[id.Int64] = true
		}
	}

	out := make([]int64, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out, nil
}

func playerToDomain(p db.Player) *domain.Player {
	return &domain.Player{
		ID:        p.ID,
		Name:      p.Name,
		GameID:    p.GameID.String,
		Status:    domain.PlayerStatus(p.Status),
		TeamID:    p.TeamID.Int64,
		SeasonID:  p.SeasonID.Int64,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}
