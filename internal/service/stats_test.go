package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"guildwar-tracker/internal/domain"
)

type fakeStatsStore struct {
	battles      []domain.Battle
	participants []domain.BattleParticipant
	playerCalls  int
}

func (f *fakeStatsStore) ListBySeason(_ context.Context, seasonID int64) ([]domain.Battle, error) {
	var out []domain.Battle
	for _, b := range f.battles {
		if b.SeasonID == seasonID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStatsStore) ParticipantsForPlayer(_ context.Context, playerID, seasonID int64) ([]domain.BattleParticipant, error) {
	f.playerCalls++
	battleSeason := make(map[int64]int64, len(f.battles))
	for _, b := range f.battles {
		battleSeason[b.ID] = b.SeasonID
	}
	var out []domain.BattleParticipant
	for _, p := range f.participants {
		if p.PlayerID == playerID && battleSeason[p.BattleID] == seasonID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStatsStore) ParticipantsForSeason(_ context.Context, seasonID int64) ([]domain.BattleParticipant, error) {
	battleSeason := make(map[int64]int64, len(f.battles))
	for _, b := range f.battles {
		battleSeason[b.ID] = b.SeasonID
	}
	var out []domain.BattleParticipant
	for _, p := range f.participants {
		if battleSeason[p.BattleID] == seasonID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestStatsService(store *fakeStatsStore, players *fakePlayers) *StatsService {
	return newStatsService(store, players, zerolog.Nop())
}

func TestPlayerStatsSumsParticipation(t *testing.T) {
	store := &fakeStatsStore{
		battles: []domain.Battle{
			{ID: 1, SeasonID: 10},
			{ID: 2, SeasonID: 10},
			{ID: 3, SeasonID: 10},
			{ID: 4, SeasonID: 11},
		},
		participants: []domain.BattleParticipant{
			{BattleID: 1, PlayerID: 1, DamageDone: 50, ShieldsBroken: 1},
			{BattleID: 2, PlayerID: 1, DamageDone: 75, ShieldsBroken: 0},
			{BattleID: 3, PlayerID: 1, DamageDone: 50, ShieldsBroken: 2},
			{BattleID: 4, PlayerID: 1, DamageDone: 999, ShieldsBroken: 9},
			{BattleID: 1, PlayerID: 2, DamageDone: 40, ShieldsBroken: 0},
		},
	}
	players := activePlayers(1)
	players.players[1].Name = "Aria"
	svc := newTestStatsService(store, players)

	stats, err := svc.PlayerStats(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, "Aria", stats.PlayerName)
	require.Equal(t, int64(175), stats.TotalDamage)
	require.Equal(t, int64(3), stats.TotalShieldsBroken)
	require.Equal(t, 3, stats.BattlesParticipated)
}

func TestPlayerStatsNoParticipationIsZero(t *testing.T) {
	store := &fakeStatsStore{}
	svc := newTestStatsService(store, activePlayers(1))

	stats, err := svc.PlayerStats(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Zero(t, stats.TotalDamage)
	require.Zero(t, stats.BattlesParticipated)
}

func TestPlayerStatsCachedUntilInvalidated(t *testing.T) {
	store := &fakeStatsStore{
		battles:      []domain.Battle{{ID: 1, SeasonID: 10}},
		participants: []domain.BattleParticipant{{BattleID: 1, PlayerID: 1, DamageDone: 100}},
	}
	svc := newTestStatsService(store, activePlayers(1))
	ctx := context.Background()

	_, err := svc.PlayerStats(ctx, 1, 10)
	require.NoError(t, err)
	_, err = svc.PlayerStats(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, store.playerCalls)

	svc.InvalidatePlayer(1, 10)
	_, err = svc.PlayerStats(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, store.playerCalls)

	svc.InvalidateSeason(10)
	_, err = svc.PlayerStats(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 3, store.playerCalls)

	svc.InvalidateAll()
	_, err = svc.PlayerStats(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 4, store.playerCalls)
}

func TestPlayerStatsCacheExpires(t *testing.T) {
	store := &fakeStatsStore{
		battles:      []domain.Battle{{ID: 1, SeasonID: 10}},
		participants: []domain.BattleParticipant{{BattleID: 1, PlayerID: 1, DamageDone: 100}},
	}
	svc := newTestStatsService(store, activePlayers(1))
	now := time.Now()
	svc.nowFn = func() time.Time { return now }
	ctx := context.Background()

	_, err := svc.PlayerStats(ctx, 1, 10)
	require.NoError(t, err)

	now = now.Add(svc.ttl + time.Second)
	_, err = svc.PlayerStats(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, store.playerCalls)
}

func TestSeasonStatsOutcomeCounters(t *testing.T) {
	store := &fakeStatsStore{
		battles: []domain.Battle{
			{ID: 1, SeasonID: 10, OurScore: 3, TheirScore: 1},
			{ID: 2, SeasonID: 10, OurScore: 0, TheirScore: 2},
			{ID: 3, SeasonID: 10, OurScore: 2, TheirScore: 2},
			{ID: 4, SeasonID: 10, OurScore: 5, TheirScore: 0},
		},
		participants: []domain.BattleParticipant{
			{BattleID: 1, PlayerID: 1, DamageDone: 1000},
			{BattleID: 2, PlayerID: 1, DamageDone: 500},
			{BattleID: 3, PlayerID: 2, DamageDone: 300},
		},
	}
	svc := newTestStatsService(store, activePlayers(1, 2))

	stats, err := svc.SeasonStats(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, 4, stats.TotalBattles)
	require.Equal(t, 2, stats.Wins)
	require.Equal(t, 1, stats.Losses)
	require.Equal(t, 1, stats.Ties)
	require.Equal(t, int64(1800), stats.TotalDamage)
	require.Equal(t, 450.0, stats.AvgDamage)
	require.Equal(t, 50.0, stats.WinRate)
}

func TestSeasonStatsWinRateRounding(t *testing.T) {
	store := &fakeStatsStore{
		battles: []domain.Battle{
			{ID: 1, SeasonID: 10, OurScore: 1, TheirScore: 0},
			{ID: 2, SeasonID: 10, OurScore: 1, TheirScore: 0},
			{ID: 3, SeasonID: 10, OurScore: 0, TheirScore: 1},
		},
	}
	svc := newTestStatsService(store, activePlayers())

	stats, err := svc.SeasonStats(context.Background(), 10)
	require.NoError(t, err)
	// 2/3 rounds to one decimal place, not truncates.
	require.Equal(t, 66.7, stats.WinRate)
}

func TestSeasonStatsEmptySeason(t *testing.T) {
	svc := newTestStatsService(&fakeStatsStore{}, activePlayers())

	stats, err := svc.SeasonStats(context.Background(), 10)
	require.NoError(t, err)
	require.Zero(t, stats.TotalBattles)
	require.Zero(t, stats.WinRate)
	require.Zero(t, stats.AvgDamage)
}

func TestTopPlayersOrderingAndLimit(t *testing.T) {
	store := &fakeStatsStore{
		battles: []domain.Battle{{ID: 1, SeasonID: 10}, {ID: 2, SeasonID: 10}},
		participants: []domain.BattleParticipant{
			{BattleID: 1, PlayerID: 1, PlayerName: "Aria", DamageDone: 100},
			{BattleID: 2, PlayerID: 1, PlayerName: "Aria", DamageDone: 100},
			{BattleID: 1, PlayerID: 2, PlayerName: "Brix", DamageDone: 300},
			{BattleID: 1, PlayerID: 3, PlayerName: "Cole", DamageDone: 200},
			{BattleID: 2, PlayerID: 4, PlayerName: "Dara", DamageDone: 200},
		},
	}
	svc := newTestStatsService(store, activePlayers(1, 2, 3, 4))
	ctx := context.Background()

	rankings, err := svc.TopPlayers(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, rankings, 4)
	require.Equal(t, int64(2), rankings[0].PlayerID)
	// Equal totals break the tie on ascending player id.
	require.Equal(t, int64(1), rankings[1].PlayerID)
	require.Equal(t, int64(3), rankings[2].PlayerID)
	require.Equal(t, int64(4), rankings[3].PlayerID)
	require.Equal(t, 100.0, rankings[1].AvgDamage)
	require.Equal(t, 2, rankings[1].BattlesParticipated)

	limited, err := svc.TopPlayers(ctx, 10, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestTopPlayersEmptySeason(t *testing.T) {
	svc := newTestStatsService(&fakeStatsStore{}, activePlayers())

	rankings, err := svc.TopPlayers(context.Background(), 10, 5)
	require.NoError(t, err)
	require.Empty(t, rankings)
}
