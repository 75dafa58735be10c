package schedule

import "errors"

// ErrSourceNotFound is returned by LoadFile when the schedule CSV does
// not exist. Fatal: the run cannot continue without input.
var ErrSourceNotFound = errors.New("schedule file not found")

// ErrSchemaMismatch is returned when the CSV header lacks a required
// column. The header layout is an external contract with the schedule
// provider, so this is fatal rather than recoverable.
var ErrSchemaMismatch = errors.New("schedule header mismatch")

// ErrNoGamesLoaded is returned when data rows were present but every
// one of them was unusable.
var ErrNoGamesLoaded = errors.New("no games loaded")
