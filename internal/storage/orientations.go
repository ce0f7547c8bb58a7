package storage

import (
	"database/sql"
	"fmt"
)

// OrientationRecord represents an orientation change in the database.
type OrientationRecord struct {
	OrientationID int64
	SessionID     string
	TsMs          int64
	StepIndex     int
	FrontColor    string
	TopColor      string
}

// OrientationRepository provides CRUD operations for orientations.
type OrientationRepository struct {
	db *DB
}

// NewOrientationRepository creates a new orientation repository.
func NewOrientationRepository(db *DB) *OrientationRepository {
	return &OrientationRepository{db: db}
}

// Create creates a new orientation record and returns its ID.
func (r *OrientationRepository) Create(sessionID string, tsMs int64, stepIndex int, frontColor, topColor string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO orientations (session_id, ts_ms, step_index, front_color, top_color)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, tsMs, stepIndex, frontColor, topColor)

	if err != nil {
		return 0, fmt.Errorf("failed to create orientation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get orientation ID: %w", err)
	}

	return id, nil
}

// GetBySession retrieves all orientation records for a session.
func (r *OrientationRepository) GetBySession(sessionID string) ([]OrientationRecord, error) {
	rows, err := r.db.Query(`
		SELECT orientation_id, session_id, ts_ms, step_index, front_color, top_color
		FROM orientations
		WHERE session_id = ?
		ORDER BY step_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get orientations: %w", err)
	}
	defer rows.Close()

	var orientations []OrientationRecord
	for rows.Next() {
		var o OrientationRecord
		err := rows.Scan(&o.OrientationID, &o.SessionID, &o.TsMs, &o.StepIndex, &o.FrontColor, &o.TopColor)
		if err != nil {
			return nil, fmt.Errorf("failed to scan orientation: %w", err)
		}
		orientations = append(orientations, o)
	}

	return orientations, rows.Err()
}

// Count returns the number of orientation changes for a session.
func (r *OrientationRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM orientations WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orientations: %w", err)
	}
	return count, nil
}

// GetLast returns the most recent orientation for a session, or nil.
func (r *OrientationRepository) GetLast(sessionID string) (*OrientationRecord, error) {
	row := r.db.QueryRow(`
		SELECT orientation_id, session_id, ts_ms, step_index, front_color, top_color
		FROM orientations
		WHERE session_id = ?
		ORDER BY step_index DESC
		LIMIT 1
	`, sessionID)

	var o OrientationRecord
	err := row.Scan(&o.OrientationID, &o.SessionID, &o.TsMs, &o.StepIndex, &o.FrontColor, &o.TopColor)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last orientation: %w", err)
	}

	return &o, nil
}
