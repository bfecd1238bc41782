package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"guildwar-tracker/internal/constants"
	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/repository"
)

// RosterStore is what the allocator needs from the roster repository.
type RosterStore interface {
	ListSlots(ctx context.Context, seasonID int64) ([]domain.RosterSlot, error)
	SlotByPlayer(ctx context.Context, seasonID, playerID int64) (*domain.RosterSlot, error)
	SlotByPosition(ctx context.Context, seasonID int64, position int) (*domain.RosterSlot, error)
	Assign(ctx context.Context, seasonID, playerID int64, position int) (*domain.RosterSlot, error)
	Reposition(ctx context.Context, slotID int64, position int) (*domain.RosterSlot, error)
	Swap(ctx context.Context, a, b domain.RosterSlot) (*domain.RosterSlot, *domain.RosterSlot, error)
	Clear(ctx context.Context, seasonID, playerID int64) (bool, error)
	Entries(ctx context.Context, seasonID int64) ([]domain.RosterEntry, error)
}

// RosterPlayers is the player lookup the allocator validates against.
type RosterPlayers interface {
	Get(ctx context.Context, id int64) (*domain.Player, error)
}

// StatsInvalidator drops cached aggregates a roster or battle mutation
// affects.
type StatsInvalidator interface {
	InvalidatePlayer(playerID, seasonID int64)
	InvalidateSeason(seasonID int64)
	InvalidateAll()
}

// seasonLocks hands out one mutex per season so mutations on the same
// season's roster serialize while different seasons never block each other.
type seasonLocks struct {
	mu sync.Map // seasonID -> *sync.Mutex
}

func (l *seasonLocks) lock(seasonID int64) func() {
	v, _ := l.mu.LoadOrStore(seasonID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// RosterService maintains the per-season mapping position(1..20) -> player.
// Every occupied position holds exactly one player and every rostered player
// holds exactly one position; each mutation preserves that bijection or fails
// with a typed error.
type RosterService struct {
	roster  RosterStore
	players RosterPlayers
	stats   StatsInvalidator
	locks   seasonLocks
	logger  zerolog.Logger
}

func NewRosterService(roster *repository.RosterRepository, players *repository.PlayerRepository, stats *StatsService, logger zerolog.Logger) *RosterService {
	return newRosterService(roster, players, stats, logger)
}

func newRosterService(roster RosterStore, players RosterPlayers, stats StatsInvalidator, logger zerolog.Logger) *RosterService {
	return &RosterService{roster: roster, players: players, stats: stats, logger: logger}
}

// AddToRoster assigns the player to the lowest-numbered empty position.
// Scanning 1..20 in order keeps placement deterministic: with positions
// {1,3} occupied the next add lands on 2, not 4.
func (s *RosterService) AddToRoster(ctx context.Context, playerID, seasonID int64) (*domain.RosterSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	unlock := s.locks.lock(seasonID)
	defer unlock()

	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Status != domain.PlayerActive {
		return nil, ErrPlayerInactive
	}

	slots, err := s.roster.ListSlots(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	occupied := make(map[int]bool, len(slots))
	for _, slot := range slots {
		if slot.PlayerID == playerID {
			return nil, ErrAlreadyRostered
		}
		occupied[slot.Position] = true
	}
	if len(slots) >= constants.RosterSize {
		return nil, ErrRosterFull
	}

	position := 0
	for p := constants.MinRosterPosition; p <= constants.MaxRosterPosition; p++ {
		if !occupied[p] {
			position = p
			break
		}
	}
	if position == 0 {
		return nil, ErrRosterFull
	}

	slot, err := s.roster.Assign(ctx, seasonID, playerID, position)
	if errors.Is(err, repository.ErrConflict) {
		return nil, ErrConcurrentModification
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("player_id", playerID).
		Int64("season_id", seasonID).
		Int("position", position).
		Msg("player added to roster")
	return slot, nil
}

// RemoveFromRoster clears the player's position if present. Removing an
// unrostered player is a no-op, not an error. Historical battle participation
// rows are untouched; only the cached aggregate is dropped.
func (s *RosterService) RemoveFromRoster(ctx context.Context, playerID, seasonID int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	unlock := s.locks.lock(seasonID)
	defer unlock()

	removed, err := s.roster.Clear(ctx, seasonID, playerID)
	if err != nil {
		return err
	}
	if removed {
		s.stats.InvalidatePlayer(playerID, seasonID)
		s.logger.Info().
			Int64("player_id", playerID).
			Int64("season_id", seasonID).
			Msg("player removed from roster")
	}
	return nil
}

// MovePlayer puts the player on targetPosition. The target must be free;
// displacing an occupant requires SwapPlayers. A player without a current
// slot is placed directly on the target position.
func (s *RosterService) MovePlayer(ctx context.Context, playerID int64, targetPosition int, seasonID int64) (*domain.RosterSlot, error) {
	if targetPosition < constants.MinRosterPosition || targetPosition > constants.MaxRosterPosition {
		return nil, ErrInvalidPosition
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	unlock := s.locks.lock(seasonID)
	defer unlock()

	occupant, err := s.roster.SlotByPosition(ctx, seasonID, targetPosition)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if occupant != nil {
		if occupant.PlayerID == playerID {
			return occupant, nil
		}
		return nil, ErrPositionOccupied
	}

	current, err := s.roster.SlotByPlayer(ctx, seasonID, playerID)
	if errors.Is(err, repository.ErrNotFound) {
		player, err := s.players.Get(ctx, playerID)
		if err != nil {
			return nil, err
		}
		if player.Status != domain.PlayerActive {
			return nil, ErrPlayerInactive
		}
		slot, err := s.roster.Assign(ctx, seasonID, playerID, targetPosition)
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConcurrentModification
		}
		return slot, err
	}
	if err != nil {
		return nil, err
	}

	slot, err := s.roster.Reposition(ctx, current.ID, targetPosition)
	if errors.Is(err, repository.ErrConflict) {
		return nil, ErrConcurrentModification
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("player_id", playerID).
		Int64("season_id", seasonID).
		Int("from", current.Position).
		Int("to", targetPosition).
		Msg("player moved")
	return slot, nil
}

// SwapPlayers exchanges the positions of two rostered players. Both must
// currently hold a slot; the exchange commits entirely or not at all.
func (s *RosterService) SwapPlayers(ctx context.Context, playerA, playerB, seasonID int64) (*domain.RosterSlot, *domain.RosterSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	unlock := s.locks.lock(seasonID)
	defer unlock()

	slotA, err := s.roster.SlotByPlayer(ctx, seasonID, playerA)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrPlayerNotRostered
	}
	if err != nil {
		return nil, nil, err
	}
	slotB, err := s.roster.SlotByPlayer(ctx, seasonID, playerB)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrPlayerNotRostered
	}
	if err != nil {
		return nil, nil, err
	}

	if playerA == playerB {
		return slotA, slotB, nil
	}

	newA, newB, err := s.roster.Swap(ctx, *slotA, *slotB)
	if errors.Is(err, repository.ErrConflict) {
		return nil, nil, ErrConcurrentModification
	}
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Int64("player_a", playerA).
		Int64("player_b", playerB).
		Int64("season_id", seasonID).
		Int("position_a", newA.Position).
		Int("position_b", newB.Position).
		Msg("players swapped")
	return newA, newB, nil
}

// Roster returns the season's roster view ordered by position.
func (s *RosterService) Roster(ctx context.Context, seasonID int64) ([]domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.roster.Entries(ctx, seasonID)
}
