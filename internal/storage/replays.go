package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrReplayNotFound is returned when no replay has the requested ID.
var ErrReplayNotFound = errors.New("replay not found")

// ReplayEntry is a stored replay log.
type ReplayEntry struct {
	ID        int64
	MapID     string
	Score     int
	Recording string // Serialized replay log
	CreatedAt time.Time
}

// SaveReplay stores a serialized replay log for the given map.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(mapID string, score int, recording string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO replays (map_id, score, recording) VALUES (?, ?, ?)",
		mapID, score, recording,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Replay retrieves a stored replay by ID.
func (s *Store) Replay(id int64) (*ReplayEntry, error) {
	var e ReplayEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, map_id, score, recording, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.MapID, &e.Score, &e.Recording, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: %w: %d", ErrReplayNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// RecentReplays lists the most recent replays, newest first. An empty mapID
// lists replays of every map. The recording text is not loaded.
func (s *Store) RecentReplays(mapID string, limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, map_id, score, created_at
		 FROM replays
		 WHERE ? = '' OR map_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		mapID, mapID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.MapID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
