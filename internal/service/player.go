package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"guildwar-tracker/internal/constants"
	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/repository"
)

// PlayerStore is what the player service needs from its repository.
type PlayerStore interface {
	Create(ctx context.Context, params repository.CreatePlayerParams) (*domain.Player, error)
	Get(ctx context.Context, id int64) (*domain.Player, error)
	GetByGameID(ctx context.Context, gameID string) (*domain.Player, error)
	List(ctx context.Context, status domain.PlayerStatus, seasonID int64) ([]domain.Player, error)
	Update(ctx context.Context, id int64, params repository.UpdatePlayerParams) (*domain.Player, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PlayerStatus) (*domain.Player, error)
	Delete(ctx context.Context, id int64) error
	Seasons(ctx context.Context, player *domain.Player) ([]int64, error)
}

// PlayerRosterStore is the roster access needed when a player leaves active
// status and must vacate every slot it holds.
type PlayerRosterStore interface {
	SeasonsFor(ctx context.Context, playerID int64) ([]int64, error)
	ClearAll(ctx context.Context, playerID int64) error
}

type PlayerSeasons interface {
	List(ctx context.Context) ([]domain.Season, error)
}

// PlayerSummary is a player plus every season it touches, for the
// management view.
type PlayerSummary struct {
	domain.Player
	Seasons []domain.Season
}

type PlayerService struct {
	players PlayerStore
	roster  PlayerRosterStore
	seasons PlayerSeasons
	stats   StatsInvalidator
	logger  zerolog.Logger
}

func NewPlayerService(players *repository.PlayerRepository, roster *repository.RosterRepository, seasons *repository.SeasonRepository, stats *StatsService, logger zerolog.Logger) *PlayerService {
	return newPlayerService(players, roster, seasons, stats, logger)
}

func newPlayerService(players PlayerStore, roster PlayerRosterStore, seasons PlayerSeasons, stats StatsInvalidator, logger zerolog.Logger) *PlayerService {
	return &PlayerService{players: players, roster: roster, seasons: seasons, stats: stats, logger: logger}
}

type CreatePlayerRequest struct {
	Name     string
	GameID   string
	TeamID   int64
	SeasonID int64
}

func (s *PlayerService) Create(ctx context.Context, req CreatePlayerRequest) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	gameID, err := s.normalizeGameID(ctx, req.GameID, 0)
	if err != nil {
		return nil, err
	}

	player, err := s.players.Create(ctx, repository.CreatePlayerParams{
		Name:     req.Name,
		GameID:   gameID,
		TeamID:   req.TeamID,
		SeasonID: req.SeasonID,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("player_id", player.ID).Str("name", player.Name).Msg("player created")
	return player, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.players.Get(ctx, id)
}

type UpdatePlayerRequest struct {
	GameID   *string
	SeasonID *int64
}

func (s *PlayerService) Update(ctx context.Context, id int64, req UpdatePlayerRequest) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	current, err := s.players.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	gameID := current.GameID
	if req.GameID != nil {
		gameID, err = s.normalizeGameID(ctx, *req.GameID, id)
		if err != nil {
			return nil, err
		}
	}
	seasonID := current.SeasonID
	if req.SeasonID != nil {
		seasonID = *req.SeasonID
	}

	return s.players.Update(ctx, id, repository.UpdatePlayerParams{
		GameID:   gameID,
		SeasonID: seasonID,
	})
}

// SetStatus toggles a player's lifecycle status. An inactive player cannot
// occupy a roster slot, so deactivation vacates every slot the player holds;
// historical battle participation stays in place.
func (s *PlayerService) SetStatus(ctx context.Context, id int64, status domain.PlayerStatus) (*domain.Player, error) {
	if status != domain.PlayerActive && status != domain.PlayerInactive {
		return nil, ErrInvalidStatus
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if status == domain.PlayerInactive {
		seasons, err := s.roster.SeasonsFor(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.roster.ClearAll(ctx, id); err != nil {
			return nil, err
		}
		for _, seasonID := range seasons {
			s.stats.InvalidatePlayer(id, seasonID)
		}
	}

	player, err := s.players.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("player_id", id).Str("status", string(status)).Msg("player status updated")
	return player, nil
}

// Delete removes the player together with its roster and participation
// references. Aggregates derived from those rows are stale afterwards, so
// the whole stats cache is dropped.
func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.players.Delete(ctx, id); err != nil {
		return err
	}
	s.stats.InvalidateAll()
	return nil
}

// List returns players filtered by status ("all" lifts the filter) and
// optionally by home season. The unfiltered listing carries each player's
// touched seasons for the management view.
func (s *PlayerService) List(ctx context.Context, status string, seasonID int64) ([]PlayerSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	filter := domain.PlayerStatus(status)
	if status == "all" {
		filter = ""
	}

	players, err := s.players.List(ctx, filter, seasonID)
	if err != nil {
		return nil, err
	}

	summaries := make([]PlayerSummary, 0, len(players))
	if filter != "" {
		for _, p := range players {
			summaries = append(summaries, PlayerSummary{Player: p})
		}
		return summaries, nil
	}

	seasons, err := s.seasons.List(ctx)
	if err != nil {
		return nil, err
	}
	seasonByID := make(map[int64]domain.Season, len(seasons))
	for _, season := range seasons {
		seasonByID[season.ID] = season
	}

	for _, p := range players {
		player := p
		ids, err := s.players.Seasons(ctx, &player)
		if err != nil {
			return nil, err
		}
		summary := PlayerSummary{Player: player, Seasons: []domain.Season{}}
		for _, seasonID := range ids {
			if season, ok := seasonByID[seasonID]; ok {
				summary.Seasons = append(summary.Seasons, season)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// normalizeGameID trims and validates the optional in-game identifier and
// enforces its uniqueness across players, excluding excludeID (0 on create).
func (s *PlayerService) normalizeGameID(ctx context.Context, gameID string, excludeID int64) (string, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return "", nil
	}
	if len(gameID) > constants.MaxGameIDLength {
		return "", ErrGameIDTooLong
	}

	existing, err := s.players.GetByGameID(ctx, gameID)
	if errors.Is(err, repository.ErrNotFound) {
		return gameID, nil
	}
	if err != nil {
		return "", err
	}
	if existing.ID != excludeID {
		return "", ErrGameIDTaken
	}
	return gameID, nil
}
