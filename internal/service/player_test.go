package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/repository"
)

type fakePlayerStore struct {
	nextID  int64
	players map[int64]domain.Player
	deleted []int64
}

func newFakePlayerStore() *fakePlayerStore {
	return &fakePlayerStore{players: make(map[int64]domain.Player)}
}

func (f *fakePlayerStore) Create(_ context.Context, params repository.CreatePlayerParams) (*domain.Player, error) {
	f.nextID++
	player := domain.Player{
		ID:       f.nextID,
		Name:     params.Name,
		GameID:   params.GameID,
		Status:   domain.PlayerActive,
		TeamID:   params.TeamID,
		SeasonID: params.SeasonID,
	}
	f.players[player.ID] = player
	return &player, nil
}

func (f *fakePlayerStore) Get(_ context.Context, id int64) (*domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &player, nil
}

func (f *fakePlayerStore) GetByGameID(_ context.Context, gameID string) (*domain.Player, error) {
	for _, player := range f.players {
		if player.GameID == gameID {
			p := player
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePlayerStore) List(_ context.Context, status domain.PlayerStatus, seasonID int64) ([]domain.Player, error) {
	var out []domain.Player
	for _, player := range f.players {
		if status != "" && player.Status != status {
			continue
		}
		if seasonID != 0 && player.SeasonID != seasonID {
			continue
		}
		out = append(out, player)
	}
	return out, nil
}

func (f *fakePlayerStore) Update(_ context.Context, id int64, params repository.UpdatePlayerParams) (*domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	player.GameID = params.GameID
	player.SeasonID = params.SeasonID
	f.players[id] = player
	return &player, nil
}

func (f *fakePlayerStore) UpdateStatus(_ context.Context, id int64, status domain.PlayerStatus) (*domain.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	player.Status = status
	f.players[id] = player
	return &player, nil
}

func (f *fakePlayerStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.players[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.players, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePlayerStore) Seasons(_ context.Context, player *domain.Player) ([]int64, error) {
	if player.SeasonID != 0 {
		return []int64{player.SeasonID}, nil
	}
	return nil, nil
}

type fakePlayerRoster struct {
	seasons []int64
	cleared []int64
}

func (f *fakePlayerRoster) SeasonsFor(_ context.Context, _ int64) ([]int64, error) {
	return f.seasons, nil
}

func (f *fakePlayerRoster) ClearAll(_ context.Context, playerID int64) error {
	f.cleared = append(f.cleared, playerID)
	return nil
}

type fakeSeasonList struct {
	seasons []domain.Season
}

func (f *fakeSeasonList) List(_ context.Context) ([]domain.Season, error) {
	return f.seasons, nil
}

func newTestPlayerService(store *fakePlayerStore, roster *fakePlayerRoster, inv *fakeInvalidator) *PlayerService {
	seasons := &fakeSeasonList{seasons: []domain.Season{{ID: 10, Name: "Season 1"}}}
	return newPlayerService(store, roster, seasons, inv, zerolog.Nop())
}

func TestCreatePlayerValidation(t *testing.T) {
	store := newFakePlayerStore()
	svc := newTestPlayerService(store, &fakePlayerRoster{}, &fakeInvalidator{})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePlayerRequest{Name: "   "})
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreatePlayerRequest{Name: "Aria", GameID: "123456789"})
	require.ErrorIs(t, err, ErrGameIDTooLong)

	player, err := svc.Create(ctx, CreatePlayerRequest{Name: "  Aria  ", GameID: " ABC123 ", SeasonID: 10})
	require.NoError(t, err)
	require.Equal(t, "Aria", player.Name)
	require.Equal(t, "ABC123", player.GameID)

	_, err = svc.Create(ctx, CreatePlayerRequest{Name: "Brix", GameID: "ABC123"})
	require.ErrorIs(t, err, ErrGameIDTaken)

	// Blank game ids never collide.
	_, err = svc.Create(ctx, CreatePlayerRequest{Name: "Brix"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePlayerRequest{Name: "Cole"})
	require.NoError(t, err)
}

func TestUpdatePlayerGameIDUniqueness(t *testing.T) {
	store := newFakePlayerStore()
	svc := newTestPlayerService(store, &fakePlayerRoster{}, &fakeInvalidator{})
	ctx := context.Background()

	a, err := svc.Create(ctx, CreatePlayerRequest{Name: "Aria", GameID: "AAA"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePlayerRequest{Name: "Brix", GameID: "BBB"})
	require.NoError(t, err)

	taken := "BBB"
	_, err = svc.Update(ctx, a.ID, UpdatePlayerRequest{GameID: &taken})
	require.ErrorIs(t, err, ErrGameIDTaken)

	// Keeping your own game id is not a collision.
	own := "AAA"
	updated, err := svc.Update(ctx, a.ID, UpdatePlayerRequest{GameID: &own})
	require.NoError(t, err)
	require.Equal(t, "AAA", updated.GameID)

	season := int64(10)
	updated, err = svc.Update(ctx, a.ID, UpdatePlayerRequest{SeasonID: &season})
	require.NoError(t, err)
	require.Equal(t, int64(10), updated.SeasonID)
	require.Equal(t, "AAA", updated.GameID)
}

func TestSetStatusInactiveVacatesRoster(t *testing.T) {
	store := newFakePlayerStore()
	roster := &fakePlayerRoster{seasons: []int64{10, 11}}
	inv := &fakeInvalidator{}
	svc := newTestPlayerService(store, roster, inv)
	ctx := context.Background()

	player, err := svc.Create(ctx, CreatePlayerRequest{Name: "Aria"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, player.ID, domain.PlayerInactive)
	require.NoError(t, err)
	require.Equal(t, domain.PlayerInactive, updated.Status)
	require.Equal(t, []int64{player.ID}, roster.cleared)
	require.Equal(t, []int64{player.ID, player.ID}, inv.players)

	// Reactivation does not touch the roster.
	updated, err = svc.SetStatus(ctx, player.ID, domain.PlayerActive)
	require.NoError(t, err)
	require.Equal(t, domain.PlayerActive, updated.Status)
	require.Len(t, roster.cleared, 1)

	_, err = svc.SetStatus(ctx, player.ID, "retired")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeletePlayerDropsWholeCache(t *testing.T) {
	store := newFakePlayerStore()
	inv := &fakeInvalidator{}
	svc := newTestPlayerService(store, &fakePlayerRoster{}, inv)
	ctx := context.Background()

	player, err := svc.Create(ctx, CreatePlayerRequest{Name: "Aria"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, player.ID))
	require.Equal(t, 1, inv.all)
	require.Equal(t, []int64{player.ID}, store.deleted)
}

func TestListPlayersFilters(t *testing.T) {
	store := newFakePlayerStore()
	svc := newTestPlayerService(store, &fakePlayerRoster{}, &fakeInvalidator{})
	ctx := context.Background()

	a, err := svc.Create(ctx, CreatePlayerRequest{Name: "Aria", SeasonID: 10})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePlayerRequest{Name: "Brix"})
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, a.ID, domain.PlayerInactive)
	require.NoError(t, err)

	active, err := svc.List(ctx, "active", 0)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "Brix", active[0].Name)

	inactive, err := svc.List(ctx, "inactive", 0)
	require.NoError(t, err)
	require.Len(t, inactive, 1)

	all, err := svc.List(ctx, "all", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, summary := range all {
		if summary.ID == a.ID {
			require.Len(t, summary.Seasons, 1)
			require.Equal(t, "Season 1", summary.Seasons[0].Name)
		} else {
			require.Empty(t, summary.Seasons)
		}
	}
}
