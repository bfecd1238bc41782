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

type RosterRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewRosterRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *RosterRepository {
	return &RosterRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *RosterRepository) ListSlots(ctx context.Context, seasonID int64) ([]domain.RosterSlot, error) {
	slots, err := r.queries.ListRosterSlots(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster slots: %w", err)
	}
	out := make([]domain.RosterSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, *slotToDomain(s))
	}
	return out, nil
}

func (r *RosterRepository) SlotByPlayer(ctx context.Context, seasonID, playerID int64) (*domain.RosterSlot, error) {
	slot, err := r.queries.GetRosterSlotByPlayer(ctx, db.GetRosterSlotByPlayerParams{
		SeasonID: seasonID,
		PlayerID: playerID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster slot by player: %w", err)
	}
	return slotToDomain(slot), nil
}

func (r *RosterRepository) SlotByPosition(ctx context.Context, seasonID int64, position int) (*domain.RosterSlot, error) {
	slot, err := r.queries.GetRosterSlotByPosition(ctx, db.GetRosterSlotByPositionParams{
		SeasonID:       seasonID,
		RosterPosition: int64(position),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster slot by position: %w", err)
	}
	return slotToDomain(slot), nil
}

// Assign inserts a new slot row. A uniqueness violation means another writer
// claimed the position or the player concurrently.
func (r *RosterRepository) Assign(ctx context.Context, seasonID, playerID int64, position int) (*domain.RosterSlot, error) {
	slot, err := r.queries.CreateRosterSlot(ctx, db.CreateRosterSlotParams{
		SeasonID:       seasonID,
		PlayerID:       playerID,
		RosterPosition: int64(position),
	})
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assign roster slot: %w", err)
	}
	return slotToDomain(slot), nil
}

func (r *RosterRepository) Reposition(ctx context.Context, slotID int64, position int) (*domain.RosterSlot, error) {
	slot, err := r.queries.UpdateRosterSlotPosition(ctx, db.UpdateRosterSlotPositionParams{
		RosterPosition: int64(position),
		ID:             slotID,
	})
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reposition roster slot: %w", err)
	}
	return slotToDomain(slot), nil
}

// Swap exchanges the positions of two occupied slots. Both rows are deleted
// and reinserted inside one transaction so the unique (season_id, position)
// constraint never sees an intermediate duplicate.
func (r *RosterRepository) Swap(ctx context.Context, a, b domain.RosterSlot) (swappedA, swappedB *domain.RosterSlot, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	for _, slot := range []domain.RosterSlot{a, b} {
		removed, err := qtx.DeleteRosterSlot(ctx, db.DeleteRosterSlotParams{
			SeasonID: slot.SeasonID,
			PlayerID: slot.PlayerID,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to clear slot for swap: %w", err)
		}
		if removed == 0 {
			return nil, nil, ErrConflict
		}
	}

	newA, err := qtx.CreateRosterSlot(ctx, db.CreateRosterSlotParams{
		SeasonID:       a.SeasonID,
		PlayerID:       a.PlayerID,
		RosterPosition: int64(b.Position),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reinsert slot for swap: %w", err)
	}
	newB, err := qtx.CreateRosterSlot(ctx, db.CreateRosterSlotParams{
		SeasonID:       b.SeasonID,
		PlayerID:       b.PlayerID,
		RosterPosition: int64(a.Position),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reinsert slot for swap: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit swap: %w", err)
	}
	return slotToDomain(newA), slotToDomain(newB), nil
}

// Clear removes a player's slot if present. Reports whether a row was removed
// so callers can skip cache invalidation on a no-op.
func (r *RosterRepository) Clear(ctx context.Context, seasonID, playerID int64) (bool, error) {
	removed, err := r.queries.DeleteRosterSlot(ctx, db.DeleteRosterSlotParams{
		SeasonID: seasonID,
		PlayerID: playerID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to clear roster slot: %w", err)
	}
	return removed > 0, nil
}

// ClearAll removes a player from every season roster, used when the player is
// deactivated.
func (r *RosterRepository) ClearAll(ctx context.Context, playerID int64) error {
	if err := r.queries.DeleteRosterSlotsByPlayer(ctx, playerID); err != nil {
		return fmt.Errorf("failed to clear roster slots for player: %w", err)
	}
	return nil
}

// SeasonsFor lists the seasons a player currently occupies a slot in.
func (r *RosterRepository) SeasonsFor(ctx context.Context, playerID int64) ([]int64, error) {
	seasons, err := r.queries.ListPlayerRosterSeasons(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player roster seasons: %w", err)
	}
	return seasons, nil
}

// Entries returns the roster view for a season: occupied slots joined with
// their active players, ordered by position.
func (r *RosterRepository) Entries(ctx context.Context, seasonID int64) ([]domain.RosterEntry, error) {
	rows, err := r.queries.ListRosterEntries(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster entries: %w", err)
	}
	out := make([]domain.RosterEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.RosterEntry{
			Position:     int(row.RosterPosition),
			PlayerID:     row.PlayerID,
			PlayerName:   row.Name,
			GameID:       row.GameID.String,
			PlayerStatus: domain.PlayerStatus(row.Status),
		})
	}
	return out, nil
}

func slotToDomain(s db.SeasonRoster) *domain.RosterSlot {
	return &domain.RosterSlot{
		ID:       s.ID,
		SeasonID: s.SeasonID,
		PlayerID: s.PlayerID,
		Position: int(s.RosterPosition),
	}
}
