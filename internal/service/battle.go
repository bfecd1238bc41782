package service

import (
	"context"

	"github.com/rs/zerolog"

	"guildwar-tracker/internal/constants"
	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/repository"
)

// BattleStore is what the battle service needs from its repository.
type BattleStore interface {
	Create(ctx context.Context, params repository.CreateBattleParams) (*domain.Battle, error)
	Get(ctx context.Context, id int64) (*domain.Battle, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]domain.Battle, error)
	Update(ctx context.Context, id int64, params repository.UpdateBattleParams) (*domain.Battle, error)
	Delete(ctx context.Context, id int64) error
	Participants(ctx context.Context, battleID int64) ([]domain.BattleParticipant, error)
	ParticipantsForSeason(ctx context.Context, seasonID int64) ([]domain.BattleParticipant, error)
}

// BattleDetail is a battle with its participant rows and derived outcome.
type BattleDetail struct {
	domain.Battle
	Outcome      domain.BattleOutcome
	Participants []domain.BattleParticipant
}

type BattleService struct {
	battles BattleStore
	stats   StatsInvalidator
	logger  zerolog.Logger
}

func NewBattleService(battles *repository.BattleRepository, stats *StatsService, logger zerolog.Logger) *BattleService {
	return newBattleService(battles, stats, logger)
}

func newBattleService(battles BattleStore, stats StatsInvalidator, logger zerolog.Logger) *BattleService {
	return &BattleService{battles: battles, stats: stats, logger: logger}
}

type CreateBattleRequest struct {
	SeasonID          int64
	EnemyName         string
	EnemyPowerRanking int
	OurScore          int
	TheirScore        int
	Participants      []repository.ParticipantParams
}

func (s *BattleService) Create(ctx context.Context, req CreateBattleRequest) (*domain.Battle, error) {
	if req.EnemyName == "" {
		return nil, ErrNameRequired
	}
	if err := validateParticipants(req.Participants); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	battle, err := s.battles.Create(ctx, repository.CreateBattleParams{
		SeasonID:          req.SeasonID,
		EnemyName:         req.EnemyName,
		EnemyPowerRanking: req.EnemyPowerRanking,
		OurScore:          req.OurScore,
		TheirScore:        req.TheirScore,
		Participants:      req.Participants,
	})
	if err != nil {
		return nil, err
	}
	s.stats.InvalidateSeason(req.SeasonID)
	return battle, nil
}

func (s *BattleService) Get(ctx context.Context, id int64) (*BattleDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	battle, err := s.battles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	participants, err := s.battles.Participants(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		battle.TotalDamage += p.DamageDone
	}
	return &BattleDetail{
		Battle:       *battle,
		Outcome:      battle.Outcome(),
		Participants: participants,
	}, nil
}

// List returns the battles of a season, newest first, each carrying its
// participants and summed damage. seasonID 0 lists every battle.
func (s *BattleService) List(ctx context.Context, seasonID int64) ([]BattleDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	battles, err := s.battles.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	// One season-wide participant fetch instead of a query per battle.
	byBattle := make(map[int64][]domain.BattleParticipant)
	if seasonID != 0 {
		participants, err := s.battles.ParticipantsForSeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		for _, p := range participants {
			byBattle[p.BattleID] = append(byBattle[p.BattleID], p)
		}
	} else {
		for _, b := range battles {
			participants, err := s.battles.Participants(ctx, b.ID)
			if err != nil {
				return nil, err
			}
			byBattle[b.ID] = participants
		}
	}

	details := make([]BattleDetail, 0, len(battles))
	for _, b := range battles {
		battle := b
		participants := byBattle[battle.ID]
		if participants == nil {
			participants = []domain.BattleParticipant{}
		}
		for _, p := range participants {
			battle.TotalDamage += p.DamageDone
		}
		details = append(details, BattleDetail{
			Battle:       battle,
			Outcome:      battle.Outcome(),
			Participants: participants,
		})
	}
	return details, nil
}

type UpdateBattleRequest struct {
	EnemyName         *string
	EnemyPowerRanking *int
	OurScore          *int
	TheirScore        *int
	// Participants replaces the participant list wholesale when non-nil.
	Participants []repository.ParticipantParams
}

func (s *BattleService) Update(ctx context.Context, id int64, req UpdateBattleRequest) (*domain.Battle, error) {
	if req.Participants != nil {
		if err := validateParticipants(req.Participants); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	current, err := s.battles.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	params := repository.UpdateBattleParams{
		EnemyName:         current.EnemyName,
		EnemyPowerRanking: current.EnemyPowerRanking,
		OurScore:          current.OurScore,
		TheirScore:        current.TheirScore,
		Participants:      req.Participants,
	}
	if req.EnemyName != nil {
		if *req.EnemyName == "" {
			return nil, ErrNameRequired
		}
		params.EnemyName = *req.EnemyName
	}
	if req.EnemyPowerRanking != nil {
		params.EnemyPowerRanking = *req.EnemyPowerRanking
	}
	if req.OurScore != nil {
		params.OurScore = *req.OurScore
	}
	if req.TheirScore != nil {
		params.TheirScore = *req.TheirScore
	}

	battle, err := s.battles.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	s.stats.InvalidateSeason(current.SeasonID)
	return battle, nil
}

func (s *BattleService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	battle, err := s.battles.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.battles.Delete(ctx, id); err != nil {
		return err
	}
	s.stats.InvalidateSeason(battle.SeasonID)
	return nil
}

// validateParticipants enforces the per-row bounds and rejects a player
// appearing twice in the same battle.
func validateParticipants(participants []repository.ParticipantParams) error {
	seen := make(map[int64]bool, len(participants))
	for _, p := range participants {
		if p.PlayerID == 0 || p.DamageDone < 1 || p.ShieldsBroken < 0 {
			return ErrInvalidParticipant
		}
		if seen[p.PlayerID] {
			return ErrDuplicateParticipant
		}
		seen[p.PlayerID] = true
	}
	return nil
}
