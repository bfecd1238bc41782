package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"guildwar-tracker/internal/domain"
	"guildwar-tracker/internal/repository"
)

type fakeBattleStore struct {
	nextID       int64
	battles      map[int64]domain.Battle
	participants map[int64][]domain.BattleParticipant
}

func newFakeBattleStore() *fakeBattleStore {
	return &fakeBattleStore{
		battles:      make(map[int64]domain.Battle),
		participants: make(map[int64][]domain.BattleParticipant),
	}
}

func (f *fakeBattleStore) Create(_ context.Context, params repository.CreateBattleParams) (*domain.Battle, error) {
	f.nextID++
	battle := domain.Battle{
		ID:                f.nextID,
		SeasonID:          params.SeasonID,
		EnemyName:         params.EnemyName,
		EnemyPowerRanking: params.EnemyPowerRanking,
		OurScore:          params.OurScore,
		TheirScore:        params.TheirScore,
	}
	for _, p := range params.Participants {
		battle.TotalDamage += p.DamageDone
		f.participants[battle.ID] = append(f.participants[battle.ID], domain.BattleParticipant{
			BattleID:      battle.ID,
			PlayerID:      p.PlayerID,
			DamageDone:    p.DamageDone,
			ShieldsBroken: p.ShieldsBroken,
		})
	}
	f.battles[battle.ID] = battle
	return &battle, nil
}

func (f *fakeBattleStore) Get(_ context.Context, id int64) (*domain.Battle, error) {
	battle, ok := f.battles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	battle.TotalDamage = 0
	return &battle, nil
}

func (f *fakeBattleStore) ListBySeason(_ context.Context, seasonID int64) ([]domain.Battle, error) {
	var out []domain.Battle
	for _, b := range f.battles {
		if seasonID == 0 || b.SeasonID == seasonID {
			b.TotalDamage = 0
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBattleStore) Update(_ context.Context, id int64, params repository.UpdateBattleParams) (*domain.Battle, error) {
	battle, ok := f.battles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	battle.EnemyName = params.EnemyName
	battle.EnemyPowerRanking = params.EnemyPowerRanking
	battle.OurScore = params.OurScore
	battle.TheirScore = params.TheirScore
	if params.Participants != nil {
		f.participants[id] = nil
		for _, p := range params.Participants {
			f.participants[id] = append(f.participants[id], domain.BattleParticipant{
				BattleID:      id,
				PlayerID:      p.PlayerID,
				DamageDone:    p.DamageDone,
				ShieldsBroken: p.ShieldsBroken,
			})
		}
	}
	f.battles[id] = battle
	return &battle, nil
}

func (f *fakeBattleStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.battles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.battles, id)
	delete(f.participants, id)
	return nil
}

func (f *fakeBattleStore) Participants(_ context.Context, battleID int64) ([]domain.BattleParticipant, error) {
	return f.participants[battleID], nil
}

func (f *fakeBattleStore) ParticipantsForSeason(_ context.Context, seasonID int64) ([]domain.BattleParticipant, error) {
	var out []domain.BattleParticipant
	for battleID, rows := range f.participants {
		if f.battles[battleID].SeasonID == seasonID {
			out = append(out, rows...)
		}
	}
	return out, nil
}

func newTestBattleService(store *fakeBattleStore, inv *fakeInvalidator) *BattleService {
	return newBattleService(store, inv, zerolog.Nop())
}

func TestCreateBattleValidation(t *testing.T) {
	svc := newTestBattleService(newFakeBattleStore(), &fakeInvalidator{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateBattleRequest
		want error
	}{
		{
			name: "missing enemy name",
			req:  CreateBattleRequest{SeasonID: 10},
			want: ErrNameRequired,
		},
		{
			name: "zero damage participant",
			req: CreateBattleRequest{
				SeasonID:  10,
				EnemyName: "Ironclad",
				Participants: []repository.ParticipantParams{
					{PlayerID: 1, DamageDone: 0},
				},
			},
			want: ErrInvalidParticipant,
		},
		{
			name: "negative shields",
			req: CreateBattleRequest{
				SeasonID:  10,
				EnemyName: "Ironclad",
				Participants: []repository.ParticipantParams{
					{PlayerID: 1, DamageDone: 100, ShieldsBroken: -1},
				},
			},
			want: ErrInvalidParticipant,
		},
		{
			name: "missing player id",
			req: CreateBattleRequest{
				SeasonID:  10,
				EnemyName: "Ironclad",
				Participants: []repository.ParticipantParams{
					{PlayerID: 0, DamageDone: 100},
				},
			},
			want: ErrInvalidParticipant,
		},
		{
			name: "duplicate participant",
			req: CreateBattleRequest{
				SeasonID:  10,
				EnemyName: "Ironclad",
				Participants: []repository.ParticipantParams{
					{PlayerID: 1, DamageDone: 100},
					{PlayerID: 1, DamageDone: 200},
				},
			},
			want: ErrDuplicateParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateBattleInvalidatesSeason(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := newTestBattleService(newFakeBattleStore(), inv)

	battle, err := svc.Create(context.Background(), CreateBattleRequest{
		SeasonID:  10,
		EnemyName: "Ironclad",
		OurScore:  3,
		Participants: []repository.ParticipantParams{
			{PlayerID: 1, DamageDone: 1500, ShieldsBroken: 2},
			{PlayerID: 2, DamageDone: 500},
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(2000), battle.TotalDamage)
	require.Equal(t, []int64{10}, inv.seasons)
}

func TestGetBattleDerivesOutcomeAndDamage(t *testing.T) {
	store := newFakeBattleStore()
	svc := newTestBattleService(store, &fakeInvalidator{})
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBattleRequest{
		SeasonID:   10,
		EnemyName:  "Ironclad",
		OurScore:   1,
		TheirScore: 3,
		Participants: []repository.ParticipantParams{
			{PlayerID: 1, DamageDone: 800},
			{PlayerID: 2, DamageDone: 400},
		},
	})
	require.NoError(t, err)

	detail, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeLoss, detail.Outcome)
	require.Equal(t, int64(1200), detail.TotalDamage)
	require.Len(t, detail.Participants, 2)
}

func TestListBattlesBySeason(t *testing.T) {
	store := newFakeBattleStore()
	svc := newTestBattleService(store, &fakeInvalidator{})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateBattleRequest{
		SeasonID:  10,
		EnemyName: "Ironclad",
		OurScore:  2,
		Participants: []repository.ParticipantParams{
			{PlayerID: 1, DamageDone: 100},
		},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateBattleRequest{
		SeasonID:   10,
		EnemyName:  "Duskwatch",
		TheirScore: 2,
		Participants: []repository.ParticipantParams{
			{PlayerID: 1, DamageDone: 250},
		},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateBattleRequest{SeasonID: 11, EnemyName: "Elsewhere"})
	require.NoError(t, err)

	details, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, details, 2)
	for _, d := range details {
		require.Equal(t, int64(10), d.SeasonID)
		require.NotNil(t, d.Participants)
	}

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestUpdateBattleMergesPartialFields(t *testing.T) {
	store := newFakeBattleStore()
	inv := &fakeInvalidator{}
	svc := newTestBattleService(store, inv)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBattleRequest{
		SeasonID:          10,
		EnemyName:         "Ironclad",
		EnemyPowerRanking: 42,
		OurScore:          1,
		TheirScore:        1,
	})
	require.NoError(t, err)

	score := 4
	updated, err := svc.Update(ctx, created.ID, UpdateBattleRequest{OurScore: &score})
	require.NoError(t, err)
	require.Equal(t, 4, updated.OurScore)
	require.Equal(t, "Ironclad", updated.EnemyName)
	require.Equal(t, 42, updated.EnemyPowerRanking)
	require.Equal(t, 1, updated.TheirScore)
	require.Contains(t, inv.seasons, int64(10))

	empty := ""
	_, err = svc.Update(ctx, created.ID, UpdateBattleRequest{EnemyName: &empty})
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Update(ctx, created.ID, UpdateBattleRequest{
		Participants: []repository.ParticipantParams{{PlayerID: 1, DamageDone: 0}},
	})
	require.ErrorIs(t, err, ErrInvalidParticipant)
}

func TestDeleteBattleInvalidatesSeason(t *testing.T) {
	store := newFakeBattleStore()
	inv := &fakeInvalidator{}
	svc := newTestBattleService(store, inv)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateBattleRequest{SeasonID: 10, EnemyName: "Ironclad"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.Equal(t, []int64{10, 10}, inv.seasons)

	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBattleOutcomeDerivation(t *testing.T) {
	tests := []struct {
		ours, theirs int
		want         domain.BattleOutcome
	}{
		{3, 1, domain.OutcomeWin},
		{0, 2, domain.OutcomeLoss},
		{2, 2, domain.OutcomeTie},
		{0, 0, domain.OutcomeTie},
	}
	for _, tt := range tests {
		b := domain.Battle{OurScore: tt.ours, TheirScore: tt.theirs}
		require.Equal(t, tt.want, b.Outcome())
	}
}
