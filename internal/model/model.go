package model

import "time"

// GameRecord is one scheduled match as published by the schedule
// provider. Start is the wall-clock start in the schedule's source
// timezone. Records are immutable once loaded.
type GameRecord struct {
	Away string
	Home string

	Start time.Time

	// Venue is passed through from the source when present; it plays
	// no part in filtering.
	Venue string
}

// DisplayGame is a GameRecord plus the attributes derived for one run:
// the Paris-converted start time and the rendering flags. It is built
// per invocation and discarded after rendering.
type DisplayGame struct {
	GameRecord

	// Paris is Start converted to the display timezone, computed once.
	Paris time.Time

	Highlighted bool
	Starred     bool
	Weekend     bool
	Canadian    bool
}
