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

type BattleRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewBattleRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *BattleRepository {
	return &BattleRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

type ParticipantParams struct {
	PlayerID      int64
	DamageDone    int64
	ShieldsBroken int64
}

type CreateBattleParams struct {
	SeasonID          int64
	EnemyName         string
	EnemyPowerRanking int
	OurScore          int
	TheirScore        int
	Participants      []ParticipantParams
}

// Create inserts the battle and its participant rows in one transaction.
func (r *BattleRepository) Create(ctx context.Context, params CreateBattleParams) (*domain.Battle, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	battle, err := qtx.CreateBattle(ctx, db.CreateBattleParams{
		SeasonID:          nullInt64(params.SeasonID),
		EnemyName:         params.EnemyName,
		EnemyPowerRanking: int64(params.EnemyPowerRanking),
		OurScore:          int64(params.OurScore),
		TheirScore:        int64(params.TheirScore),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle: %w", err)
	}

	var totalDamage int64
	for _, p := range params.Participants {
		if _, err := qtx.CreateBattleParticipant(ctx, db.CreateBattleParticipantParams{
			BattleID:      battle.ID,
			PlayerID:      p.PlayerID,
			DamageDone:    p.DamageDone,
			ShieldsBroken: p.ShieldsBroken,
		}); err != nil {
			if isUniqueViolation(err) {
				return nil, ErrConflict
			}
			return nil, fmt.Errorf("failed to create battle participant: %w", err)
		}
		totalDamage += p.DamageDone
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit battle create: %w", err)
	}

	out := battleToDomain(battle)
	out.TotalDamage = totalDamage
	r.logger.Info().Int64("battle_id", out.ID).Int64("season_id", out.SeasonID).Msg("battle recorded")
	return out, nil
}

func (r *BattleRepository) Get(ctx context.Context, id int64) (*domain.Battle, error) {
	battle, err := r.queries.GetBattle(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get battle: %w", err)
	}
	return battleToDomain(battle), nil
}

func (r *BattleRepository) ListBySeason(ctx context.Context, seasonID int64) ([]domain.Battle, error) {
	var (
		battles []db.Battle
		err     error
	)
	if seasonID != 0 {
		battles, err = r.queries.ListBattlesBySeason(ctx, nullInt64(seasonID))
	} else {
		battles, err = r.queries.ListBattles(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list battles: %w", err)
	}
	out := make([]domain.Battle, 0, len(battles))
	for _, b := range battles {
		out = append(out, *battleToDomain(b))
	}
	return out, nil
}

type UpdateBattleParams struct {
	EnemyName         string
	EnemyPowerRanking int
	OurScore          int
	TheirScore        int
	// Participants replaces the participant list wholesale when non-nil.
	Participants []ParticipantParams
}

// Update rewrites the battle's scalar fields and, when a participant list is
// supplied, replaces every participant row in the same transaction.
func (r *BattleRepository) Update(ctx context.Context, id int64, params UpdateBattleParams) (*domain.Battle, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	battle, err := qtx.UpdateBattle(ctx, db.UpdateBattleParams{
		EnemyName:         params.EnemyName,
		EnemyPowerRanking: int64(params.EnemyPowerRanking),
		OurScore:          int64(params.OurScore),
		TheirScore:        int64(params.TheirScore),
		ID:                id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update battle: %w", err)
	}

	if params.Participants != nil {
		if err := qtx.DeleteBattleParticipants(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete battle participants: %w", err)
		}
		for _, p := range params.Participants {
			if _, err := qtx.CreateBattleParticipant(ctx, db.CreateBattleParticipantParams{
				BattleID:      id,
				PlayerID:      p.PlayerID,
				DamageDone:    p.DamageDone,
				ShieldsBroken: p.ShieldsBroken,
			}); err != nil {
				if isUniqueViolation(err) {
					return nil, ErrConflict
				}
				return nil, fmt.Errorf("failed to create battle participant: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit battle update: %w", err)
	}
	return battleToDomain(battle), nil
}

// Delete removes the battle and its participants, participants first to
// satisfy the foreign key.
func (r *BattleRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeleteBattleParticipants(ctx, id); err != nil {
		return fmt.Errorf("failed to delete battle participants: %w", err)
	}
	if err := qtx.DeleteBattle(ctx, id); err != nil {
		return fmt.Errorf("failed to delete battle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit battle delete: %w", err)
	}
	r.logger.Debug().Int64("battle_id", id).Msg("battle deleted")
	return nil
}

func (r *BattleRepository) Participants(ctx context.Context, battleID int64) ([]domain.BattleParticipant, error) {
	rows, err := r.queries.ListBattleParticipants(ctx, battleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list battle participants: %w", err)
	}
	out := make([]domain.BattleParticipant, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.BattleParticipant{
			ID:            row.ID,
			BattleID:      row.BattleID,
			PlayerID:      row.PlayerID,
			PlayerName:    row.PlayerName,
			DamageDone:    row.DamageDone,
			ShieldsBroken: row.ShieldsBroken,
		})
	}
	return out, nil
}

// ParticipantsForPlayer returns the player's participation rows restricted to
// battles of one season. The aggregation itself happens in the service layer.
func (r *BattleRepository) ParticipantsForPlayer(ctx context.Context, playerID, seasonID int64) ([]domain.BattleParticipant, error) {
	rows, err := r.queries.ListParticipantsByPlayerAndSeason(ctx, db.ListParticipantsByPlayerAndSeasonParams{
		PlayerID: playerID,
		SeasonID: nullInt64(seasonID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list participations for player: %w", err)
	}
	out := make([]domain.BattleParticipant, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.BattleParticipant{
			ID:            row.ID,
			BattleID:      row.BattleID,
			PlayerID:      row.PlayerID,
			DamageDone:    row.DamageDone,
			ShieldsBroken: row.ShieldsBroken,
		})
	}
	return out, nil
}

// ParticipantsForSeason returns every participation row across the season's
// battles, joined with player names for leaderboard display.
func (r *BattleRepository) ParticipantsForSeason(ctx context.Context, seasonID int64) ([]domain.BattleParticipant, error) {
	rows, err := r.queries.ListParticipantsBySeason(ctx, nullInt64(seasonID))
	if err != nil {
		return nil, fmt.Errorf("failed to list participations for season: %w", err)
	}
	out := make([]domain.BattleParticipant, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.BattleParticipant{
			ID:            row.ID,
			BattleID:      row.BattleID,
			PlayerID:      row.PlayerID,
			PlayerName:    row.PlayerName,
			DamageDone:    row.DamageDone,
			ShieldsBroken: row.ShieldsBroken,
		})
	}
	return out, nil
}

func battleToDomain(b db.Battle) *domain.Battle {
	return &domain.Battle{
		ID:                b.ID,
		SeasonID:          b.SeasonID.Int64,
		EnemyName:         b.EnemyName,
		EnemyPowerRanking: int(b.EnemyPowerRanking),
		OurScore:          int(b.OurScore),
		TheirScore:        int(b.TheirScore),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
