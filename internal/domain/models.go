package domain

import (
	"time"
)

type PlayerStatus string

const (
	PlayerActive   PlayerStatus = "active"
	PlayerInactive PlayerStatus = "inactive"
)

type Player struct {
	ID        int64
	Name      string
	GameID    string // optional in-game identifier, unique when set
	Status    PlayerStatus
	TeamID    int64 // 0 when the player is not scoped to a team
	SeasonID  int64 // home season, 0 when unset
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Season struct {
	ID        int64
	Name      string
	TeamID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RosterSlot is one occupied position in a season's 20-slot roster.
type RosterSlot struct {
	ID       int64
	SeasonID int64
	PlayerID int64
	Position int
}

// RosterEntry is a slot joined with the occupying player, for the roster view.
type RosterEntry struct {
	Position     int
	PlayerID     int64
	PlayerName   string
	GameID       string
	PlayerStatus PlayerStatus
}

type BattleOutcome string

const (
	OutcomeWin  BattleOutcome = "win"
	OutcomeLoss BattleOutcome = "loss"
	OutcomeTie  BattleOutcome = "tie"
)

type Battle struct {
	ID                int64
	SeasonID          int64
	EnemyName         string
	EnemyPowerRanking int
	OurScore          int
	TheirScore        int
	TotalDamage       int64 // sum of participant damage, derived
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Outcome is derived from the score pair and never stored, so edited scores
// can never disagree with it.
func (b *Battle) Outcome() BattleOutcome {
	switch {
	case b.OurScore > b.TheirScore:
		return OutcomeWin
	case b.OurScore < b.TheirScore:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}

type BattleParticipant struct {
	ID            int64
	BattleID      int64
	PlayerID      int64
	PlayerName    string
	DamageDone    int64
	ShieldsBroken int64
}

// PlayerBattleStats summarizes one player's participation within a season.
type PlayerBattleStats struct {
	PlayerID            int64
	PlayerName          string
	TotalDamage         int64
	TotalShieldsBroken  int64
	BattlesParticipated int
}

// SeasonStats summarizes every battle recorded for a season.
type SeasonStats struct {
	TotalBattles int
	Wins         int
	Losses       int
	Ties         int
	WinRate      float64 // percentage, one decimal place
	TotalDamage  int64
	AvgDamage    float64
}

// PlayerRanking is one row of the top-players leaderboard.
type PlayerRanking struct {
	PlayerID            int64
	PlayerName          string
	TotalDamage         int64
	TotalShieldsBroken  int64
	BattlesParticipated int
	AvgDamage           float64
}
