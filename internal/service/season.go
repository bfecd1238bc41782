package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"guildwar-tracker/internal/constants"
	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/repository"
)

// SeasonStore is what the season service needs from its repository.
type SeasonStore interface {
	Create(ctx context.Context, name string, teamID int64) (*domain.Season, error)
	Get(ctx context.Context, id int64) (*domain.Season, error)
	Latest(ctx context.Context) (*domain.Season, error)
	List(ctx context.Context) ([]domain.Season, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Season, error)
	Delete(ctx context.Context, id int64) error
}

type SeasonService struct {
	seasons SeasonStore
	stats   StatsInvalidator
	logger  zerolog.Logger
}

func NewSeasonService(seasons *repository.SeasonRepository, stats *StatsService, logger zerolog.Logger) *SeasonService {
	return newSeasonService(seasons, stats, logger)
}

func newSeasonService(seasons SeasonStore, stats StatsInvalidator, logger zerolog.Logger) *SeasonService {
	return &SeasonService{seasons: seasons, stats: stats, logger: logger}
}

func (s *SeasonService) Create(ctx context.Context, name string, teamID int64) (*domain.Season, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	season, err := s.seasons.Create(ctx, name, teamID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("season_id", season.ID).Str("name", season.Name).Msg("season created")
	return season, nil
}

func (s *SeasonService) Get(ctx context.Context, id int64) (*domain.Season, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.seasons.Get(ctx, id)
}

// Current returns the most recently created season, the default selection
// for the web client.
func (s *SeasonService) Current(ctx context.Context) (*domain.Season, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.seasons.Latest(ctx)
}

func (s *SeasonService) List(ctx context.Context) ([]domain.Season, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.seasons.List(ctx)
}

func (s *SeasonService) Rename(ctx context.Context, id int64, name string) (*domain.Season, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.seasons.Rename(ctx, id, name)
}

// Delete removes the season together with its battles and roster, then drops
// every cached aggregate scoped to it.
func (s *SeasonService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.seasons.Delete(ctx, id); err != nil {
		return err
	}
	s.stats.InvalidateSeason(id)
	return nil
}
