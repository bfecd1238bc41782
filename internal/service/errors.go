package service

import "errors"

// Roster allocation failures. These are surfaced to the caller unchanged;
// the allocator never silently picks a different slot than the one requested.
var (
	ErrRosterFull             = errors.New("all 20 roster positions are occupied")
	ErrAlreadyRostered        = errors.New("player already holds a roster position this season")
	ErrPlayerNotRostered      = errors.New("player is not on the roster for this season")
	ErrPositionOccupied       = errors.New("roster position is already occupied")
	ErrInvalidPosition        = errors.New("roster position must be between 1 and 20")
	ErrConcurrentModification = errors.New("roster changed concurrently, retry the operation")
	ErrPlayerInactive         = errors.New("only active players can be added to the roster")
)

// Write-boundary validation failures.
var (
	ErrNameRequired         = errors.New("name is required")
	ErrInvalidStatus        = errors.New("status must be active or inactive")
	ErrGameIDTooLong        = errors.New("game id must be at most 8 characters")
	ErrGameIDTaken          = errors.New("game id is already used by another player")
	ErrInvalidParticipant   = errors.New("participant damage must be at least 1 and shields broken non-negative")
	ErrDuplicateParticipant = errors.New("player listed more than once in battle participants")
)
