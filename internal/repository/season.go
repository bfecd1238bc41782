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

type SeasonRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSeasonRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SeasonRepository {
	return &SeasonRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *SeasonRepository) Create(ctx context.Context, name string, teamID int64) (*domain.Season, error) {
	season, err := r.queries.CreateSeason(ctx, db.CreateSeasonParams{
		Name:   name,
		TeamID: nullInt64(teamID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	return seasonToDomain(season), nil
}

func (r *SeasonRepository) Get(ctx context.Context, id int64) (*domain.Season, error) {
	season, err := r.queries.GetSeason(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return seasonToDomain(season), nil
}

// Latest returns the newest season by creation time, used as the default
// selection for the web client.
func (r *SeasonRepository) Latest(ctx context.Context) (*domain.Season, error) {
	season, err := r.queries.GetLatestSeason(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest season: %w", err)
	}
	return seasonToDomain(season), nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]domain.Season, error) {
	seasons, err := r.queries.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	out := make([]domain.Season, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, *seasonToDomain(s))
	}
	return out, nil
}

func (r *SeasonRepository) Rename(ctx context.Context, id int64, name string) (*domain.Season, error) {
	season, err := r.queries.UpdateSeasonName(ctx, db.UpdateSeasonNameParams{
		Name: name,
		ID:   id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rename season: %w", err)
	}
	return seasonToDomain(season), nil
}

// Delete cascades through the season's battle participants, battles, and
// roster rows, clears player home-season references, then removes the season
// itself. One transaction, ordered to satisfy foreign keys.
func (r *SeasonRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	seasonID := nullInt64(id)
	if err := qtx.DeleteParticipantsBySeason(ctx, seasonID); err != nil {
		return fmt.Errorf("failed to delete season participants: %w", err)
	}
	if err := qtx.DeleteBattlesBySeason(ctx, seasonID); err != nil {
		return fmt.Errorf("failed to delete season battles: %w", err)
	}
	if err := qtx.DeleteRosterSlotsBySeason(ctx, id); err != nil {
		return fmt.Errorf("failed to delete season roster: %w", err)
	}
	if err := qtx.ClearPlayersSeason(ctx, seasonID); err != nil {
		return fmt.Errorf("failed to clear player season references: %w", err)
	}
	if err := qtx.DeleteSeason(ctx, id); err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit season delete: %w", err)
	}
	r.logger.Info().Int64("season_id", id).Msg("season deleted with battles and roster")
	return nil
}

func seasonToDomain(s db.Season) *domain.Season {
	return &domain.Season{
		ID:        s.ID,
		Name:      s.Name,
		TeamID:    s.TeamID.Int64,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
