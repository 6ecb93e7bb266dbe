package store

import "time"

// Snapshot is one saved export kept in the history database.
type Snapshot struct {
	ID      string
	SavedAt time.Time
	Count   int
}

// recordRow mirrors a row of the records table.
type recordRow struct {
	Position int
	Day      string
	Event    string
	Type     string
	Start    string
	End      string
	Deadline string
}
