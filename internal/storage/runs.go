package storage

import (
	"fmt"
	"strconv"
	"time"
)

// RunRecord describes one finished run, enough to replay it.
type RunRecord struct {
	ID          int64
	GameID      string
	Player      string // SSH user, empty for local play
	Seed        int64
	Score       int
	Ticks       uint64
	Cause       string // "hit", "drowned", "off-grid" or "abandoned"
	Fingerprint uint64 // World fingerprint at the end of the run
	CreatedAt   time.Time
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, player, seed, score, ticks, cause, fingerprint)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Seed, r.Score, int64(r.Ticks), r.Cause,
		strconv.FormatUint(r.Fingerprint, 16),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the most recent runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, seed, score, ticks, cause, fingerprint, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var ticks int64
		var fp string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Seed, &r.Score, &ticks, &r.Cause, &fp, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Ticks = uint64(ticks)
		if r.Fingerprint, err = strconv.ParseUint(fp, 16, 64); err != nil {
			return nil, fmt.Errorf("storage: bad fingerprint %q: %w", fp, err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// CauseCounts returns how many recorded runs of a game ended for each cause.
func (s *Store) CauseCounts(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT cause, COUNT(*) FROM runs WHERE game_id = ? GROUP BY cause`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count causes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cause string
		var n int
		if err := rows.Scan(&cause, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan cause row: %w", err)
		}
		counts[cause] = n
	}
	return counts, rows.Err()
}
