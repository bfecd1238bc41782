package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"guildwar-tracker/internal/constants"
	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/repository"
)

// StatsStore is what the aggregator needs from the battle repository. It
// hands back raw rows; all reduction happens here.
type StatsStore interface {
	ListBySeason(ctx context.Context, seasonID int64) ([]domain.Battle, error)
	ParticipantsForPlayer(ctx context.Context, playerID, seasonID int64) ([]domain.BattleParticipant, error)
	ParticipantsForSeason(ctx context.Context, seasonID int64) ([]domain.BattleParticipant, error)
}

type StatsPlayers interface {
	Get(ctx context.Context, id int64) (*domain.Player, error)
}

type statsKey struct {
	playerID int64
	seasonID int64
}

type cachedStats struct {
	stats   domain.PlayerBattleStats
	expires time.Time
}

// StatsService reduces battle participation records into summaries. Reads
// are side-effect-free; a slightly stale cached value is acceptable, so the
// cache is only dropped on the mutations that affect it.
type StatsService struct {
	battles StatsStore
	players StatsPlayers
	logger  zerolog.Logger

	mu    sync.RWMutex
	cache map[statsKey]cachedStats
	group singleflight.Group
	ttl   time.Duration
	nowFn func() time.Time
}

func NewStatsService(battles *repository.BattleRepository, players *repository.PlayerRepository, logger zerolog.Logger) *StatsService {
	return newStatsService(battles, players, logger)
}

func newStatsService(battles StatsStore, players StatsPlayers, logger zerolog.Logger) *StatsService {
	return &StatsService{
		battles: battles,
		players: players,
		logger:  logger,
		cache:   make(map[statsKey]cachedStats),
		ttl:     constants.PlayerStatsCacheTTL,
		nowFn:   time.Now,
	}
}

// PlayerStats sums the player's participation rows within a season. Missing
// data resolves to a zero-valued summary, never an error. Concurrent requests
// for the same player share one recomputation.
func (s *StatsService) PlayerStats(ctx context.Context, playerID, seasonID int64) (*domain.PlayerBattleStats, error) {
	key := statsKey{playerID: playerID, seasonID: seasonID}

	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if ok && s.nowFn().Before(entry.expires) {
		stats := entry.stats
		return &stats, nil
	}

	v, err, _ := s.group.Do(fmt.Sprintf("%d:%d", playerID, seasonID), func() (interface{}, error) {
		return s.computePlayerStats(ctx, playerID, seasonID)
	})
	if err != nil {
		return nil, err
	}
	stats := v.(domain.PlayerBattleStats)
	return &stats, nil
}

func (s *StatsService) computePlayerStats(ctx context.Context, playerID, seasonID int64) (domain.PlayerBattleStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return domain.PlayerBattleStats{}, err
	}

	rows, err := s.battles.ParticipantsForPlayer(ctx, playerID, seasonID)
	if err != nil {
		return domain.PlayerBattleStats{}, err
	}

	stats := domain.PlayerBattleStats{
		PlayerID:   playerID,
		PlayerName: player.Name,
	}
	for _, row := range rows {
		stats.TotalDamage += row.DamageDone
		stats.TotalShieldsBroken += row.ShieldsBroken
		stats.BattlesParticipated++
	}

	s.mu.Lock()
	s.cache[statsKey{playerID: playerID, seasonID: seasonID}] = cachedStats{
		stats:   stats,
		expires: s.nowFn().Add(s.ttl),
	}
	s.mu.Unlock()

	s.logger.Debug().
		Int64("player_id", playerID).
		Int64("season_id", seasonID).
		Int64("total_damage", stats.TotalDamage).
		Int("battles", stats.BattlesParticipated).
		Msg("player stats computed")
	return stats, nil
}

// SeasonStats reduces every battle of a season into win/loss/tie counters and
// damage totals. A season with no battles yields all zeros; there is no
// division by zero.
func (s *StatsService) SeasonStats(ctx context.Context, seasonID int64) (*domain.SeasonStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var (
		battles      []domain.Battle
		participants []domain.BattleParticipant
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		battles, err = s.battles.ListBySeason(gCtx, seasonID)
		return err
	})
	g.Go(func() error {
		var err error
		participants, err = s.battles.ParticipantsForSeason(gCtx, seasonID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &domain.SeasonStats{TotalBattles: len(battles)}
	for _, b := range battles {
		switch b.Outcome() {
		case domain.OutcomeWin:
			stats.Wins++
		case domain.OutcomeLoss:
			stats.Losses++
		default:
			stats.Ties++
		}
	}
	for _, p := range participants {
		stats.TotalDamage += p.DamageDone
	}
	if stats.TotalBattles > 0 {
		stats.AvgDamage = float64(stats.TotalDamage) / float64(stats.TotalBattles)
		stats.WinRate = math.Round(float64(stats.Wins)/float64(stats.TotalBattles)*1000) / 10
	}
	return stats, nil
}

// TopPlayers ranks a season's players by total damage, descending. Ties
// break on ascending player id so the order is reproducible. Per-player
// average damage floors the denominator at one battle rather than
// special-casing zero.
func (s *StatsService) TopPlayers(ctx context.Context, seasonID int64, limit int) ([]domain.PlayerRanking, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	participants, err := s.battles.ParticipantsForSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[int64]*domain.PlayerRanking)
	for _, p := range participants {
		ranking, ok := byPlayer[p.PlayerID]
		if !ok {
			ranking = &domain.PlayerRanking{PlayerID: p.PlayerID, PlayerName: p.PlayerName}
			byPlayer[p.PlayerID] = ranking
		}
		ranking.TotalDamage += p.DamageDone
		ranking.TotalShieldsBroken += p.ShieldsBroken
		ranking.BattlesParticipated++
	}

	rankings := make([]domain.PlayerRanking, 0, len(byPlayer))
	for _, r := range byPlayer {
		battles := r.BattlesParticipated
		if battles < 1 {
			battles = 1
		}
		r.AvgDamage = float64(r.TotalDamage) / float64(battles)
		rankings = append(rankings, *r)
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].TotalDamage != rankings[j].TotalDamage {
			return rankings[i].TotalDamage > rankings[j].TotalDamage
		}
		return rankings[i].PlayerID < rankings[j].PlayerID
	})

	if limit > 0 && len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings, nil
}

// InvalidatePlayer drops the cached summary for one player in one season.
func (s *StatsService) InvalidatePlayer(playerID, seasonID int64) {
	s.mu.Lock()
	delete(s.cache, statsKey{playerID: playerID, seasonID: seasonID})
	s.mu.Unlock()
}

// InvalidateSeason drops every cached summary scoped to the season, after a
// battle in it is created, updated, or deleted.
func (s *StatsService) InvalidateSeason(seasonID int64) {
	s.mu.Lock()
	for key := range s.cache {
		if key.seasonID == seasonID {
			delete(s.cache, key)
		}
	}
	s.mu.Unlock()
}

// InvalidateAll clears the cache entirely, used when a player deletion
// rewrites history across seasons.
func (s *StatsService) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[statsKey]cachedStats)
	s.mu.Unlock()
}
