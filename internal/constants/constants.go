package constants

import "time"

const (
	// RosterSize is the hard business limit on occupied slots per season.
	RosterSize        = 20
	MinRosterPosition = 1
	MaxRosterPosition = RosterSize
)

const (
	// MaxGameIDLength bounds the optional in-game identifier on a player.
	MaxGameIDLength = 8
)

const (
	PlayerStatsCacheTTL = 5 * time.Minute
)

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
