package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/planr/internal/export"
)

// Save records a new snapshot holding records in order.
func (s *DB) Save(records []export.Record) error {
	_, err := s.SaveSnapshot(records)
	return err
}

// SaveSnapshot is Save returning the stored snapshot.
func (s *DB) SaveSnapshot(records []export.Record) (*Snapshot, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	snap := &Snapshot{
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC().Truncate(time.Second),
		Count:   len(records),
	}
	if _, err := tx.Exec(
		`INSERT INTO snapshots (id, saved_at, count) VALUES (?, ?, ?)`,
		snap.ID, snap.SavedAt.Format(time.RFC3339Nano), snap.Count,
	); err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	for i, r := range records {
		row := toRow(i, r)
		if _, err := tx.Exec(
			`INSERT INTO records (snapshot_id, position, day, event, type, start, end_time, deadline)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.ID, row.Position, row.Day, row.Event, row.Type, row.Start, row.End, row.Deadline,
		); err != nil {
			return nil, fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return snap, nil
}

// Load returns the records of the most recent snapshot, or none when the
// history is empty.
func (s *DB) Load() ([]export.Record, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM snapshots ORDER BY saved_at DESC, rowid DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	return s.LoadSnapshot(id)
}

// LoadSnapshot returns the records of one snapshot in saved order.
func (s *DB) LoadSnapshot(id string) ([]export.Record, error) {
	rows, err := s.db.Query(
		`SELECT position, day, event, type, start, end_time, deadline
		 FROM records WHERE snapshot_id = ? ORDER BY position`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}
	defer rows.Close()

	var records []export.Record
	for rows.Next() {
		var row recordRow
		if err := rows.Scan(&row.Position, &row.Day, &row.Event, &row.Type, &row.Start, &row.End, &row.Deadline); err != nil {
			return nil, err
		}
		r, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListSnapshots returns saved snapshots, newest first. A positive limit caps
// the result.
func (s *DB) ListSnapshots(limit int) ([]Snapshot, error) {
	query := `SELECT id, saved_at, count FROM snapshots ORDER BY saved_at DESC, rowid DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var savedAt string
		if err := rows.Scan(&snap.ID, &savedAt, &snap.Count); err != nil {
			return nil, err
		}
		snap.SavedAt, _ = time.Parse(time.RFC3339Nano, savedAt)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func toRow(position int, r export.Record) recordRow {
	h := export.HeaderOf(r)
	row := recordRow{Position: position, Day: h.Day, Event: h.Event, Type: string(r.Kind())}
	switch r := r.(type) {
	case export.FixedRecord:
		row.Start, row.End = r.Start, r.End
	case export.DeadlineRecord:
		row.Deadline = r.Deadline
	}
	return row
}

func fromRow(row recordRow) (export.Record, error) {
	h := export.Header{Day: row.Day, Event: row.Event}
	switch export.Kind(row.Type) {
	case export.KindFixed:
		return export.FixedRecord{Header: h, Start: row.Start, End: row.End}, nil
	case export.KindDeadline:
		return export.DeadlineRecord{Header: h, Deadline: row.Deadline}, nil
	}
	return nil, fmt.Errorf("record %d: %w %q", row.Position, export.ErrUnknownType, row.Type)
}
