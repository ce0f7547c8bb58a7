package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/rubiks_cube"
)

// StepRecord represents a recorded step in the database.
type StepRecord struct {
	StepID     int64
	SessionID  string
	StepIndex  int
	TsMs       int64
	Operation  string
	Family     string
	Undo       bool
	StackDepth int
}

// Step converts the record back to a replayable step.
func (r StepRecord) Step() (rubiks.Step, error) {
	op, err := rubiks.ParseOperation(r.Operation)
	if err != nil {
		return rubiks.Step{}, fmt.Errorf("step %d: %w", r.StepIndex, err)
	}
	return rubiks.Step{Op: op, Undo: r.Undo, Depth: r.StackDepth}, nil
}

// ToSteps converts records to replayable steps, stopping at the first
// unknown operation.
func ToSteps(records []StepRecord) ([]rubiks.Step, error) {
	steps := make([]rubiks.Step, 0, len(records))
	for _, rec := range records {
		s, err := rec.Step()
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// StepRepository provides CRUD operations for steps.
type StepRepository struct {
	db *DB
}

// NewStepRepository creates a new step repository.
func NewStepRepository(db *DB) *StepRepository {
	return &StepRepository{db: db}
}

const insertStep = `
	INSERT INTO steps (session_id, step_index, ts_ms, operation, family, undo, stack_depth)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// Create creates a new step and returns its ID.
func (r *StepRepository) Create(sessionID string, stepIndex int, tsMs int64, step rubiks.Step) (int64, error) {
	result, err := r.db.Exec(insertStep,
		sessionID, stepIndex, tsMs, step.Op.String(), step.Op.Family().String(), step.Undo, step.Depth)

	if err != nil {
		return 0, fmt.Errorf("failed to create step: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get step ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates multiple steps in a single transaction.
func (r *StepRepository) CreateBatch(sessionID string, steps []rubiks.Step, startIndex int, tsMs int64) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, step := range steps {
			_, err := tx.Exec(insertStep,
				sessionID, startIndex+i, tsMs, step.Op.String(), step.Op.Family().String(), step.Undo, step.Depth)
			if err != nil {
				return fmt.Errorf("failed to create step %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all steps for a session in order.
func (r *StepRepository) GetBySession(sessionID string) ([]StepRecord, error) {
	rows, err := r.db.Query(`
		SELECT step_id, session_id, step_index, ts_ms, operation, family, undo, stack_depth
		FROM steps
		WHERE session_id = ?
		ORDER BY step_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var s StepRecord
		err := rows.Scan(&s.StepID, &s.SessionID, &s.StepIndex, &s.TsMs, &s.Operation, &s.Family, &s.Undo, &s.StackDepth)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, s)
	}

	return steps, rows.Err()
}

// GetNextIndex returns the next step index for a session.
func (r *StepRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(step_index), -1) FROM steps WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max step index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of steps for a session.
func (r *StepRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM steps WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count steps: %w", err)
	}
	return count, nil
}
