package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Attempt represents one recognition submission stored in the database.
type Attempt struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Name        string    `json:"name"`
	Score       float64   `json:"score"`
	StrokeCount int       `json:"stroke_count"`
	PointCount  int       `json:"point_count"`
	Accepted    bool      `json:"accepted"`
	CreatedAt   time.Time `json:"created_at"`
}

// AttemptRepository provides CRUD operations for recognition attempts.
type AttemptRepository struct {
	db *sql.DB
}

// Attempts returns the attempt repository for this store.
func (s *Store) Attempts() *AttemptRepository {
	return &AttemptRepository{db: s.db}
}

// Create inserts a new attempt into the database.
func (r *AttemptRepository) Create(a *Attempt) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	accepted := 0
	if a.Accepted {
		accepted = 1
	}

	_, err := r.db.Exec(
		`INSERT INTO attempts (id, session_id, name, score, stroke_count, point_count, accepted, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SessionID, a.Name, a.Score, a.StrokeCount, a.PointCount, accepted, a.CreatedAt,
	)
	return err
}

// GetByID retrieves an attempt by its ID.
func (r *AttemptRepository) GetByID(id string) (*Attempt, error) {
	a := &Attempt{}
	var accepted int

	err := r.db.QueryRow(
		`SELECT id, session_id, name, score, stroke_count, point_count, accepted, created_at
		 FROM attempts WHERE id = ?`,
		id,
	).Scan(&a.ID, &a.SessionID, &a.Name, &a.Score, &a.StrokeCount, &a.PointCount, &accepted, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Accepted = accepted != 0
	return a, nil
}

// Recent retrieves the latest attempts, newest first, up to limit.
func (r *AttemptRepository) Recent(limit int) ([]*Attempt, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, name, score, stroke_count, point_count, accepted, created_at
		 FROM attempts ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// ListBySession retrieves all attempts for a session, oldest first.
func (r *AttemptRepository) ListBySession(sessionID string) ([]*Attempt, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, name, score, stroke_count, point_count, accepted, created_at
		 FROM attempts WHERE session_id = ? ORDER BY created_at, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// DeleteBefore removes attempts created before the cutoff and returns
// the number of rows deleted.
func (r *AttemptRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM attempts WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanAttempts(rows *sql.Rows) ([]*Attempt, error) {
	var attempts []*Attempt
	for rows.Next() {
		a := &Attempt{}
		var accepted int

		err := rows.Scan(&a.ID, &a.SessionID, &a.Name, &a.Score, &a.StrokeCount, &a.PointCount, &accepted, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		a.Accepted = accepted != 0
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attempts, nil
}
