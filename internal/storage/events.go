package storage

import (
	"encoding/json"
	"fmt"
)

// Event types recorded alongside steps.
const (
	EventShuffle          = "shuffle"
	EventUnshuffle        = "unshuffle"
	EventResetPerspective = "reset_perspective"
	EventResume           = "resume"
)

// Event represents a session-level event in the database.
type Event struct {
	EventID     int64
	SessionID   string
	TsMs        int64
	EventType   string
	PayloadJSON string
}

// EventRepository provides CRUD operations for events.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create stores an event with a JSON-encoded payload and returns its ID.
func (r *EventRepository) Create(sessionID string, tsMs int64, eventType string, payload any) (int64, error) {
	payloadJSON := "{}"
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("failed to encode event payload: %w", err)
		}
		payloadJSON = string(data)
	}

	result, err := r.db.Exec(`
		INSERT INTO events (session_id, ts_ms, event_type, payload_json)
		VALUES (?, ?, ?, ?)
	`, sessionID, tsMs, eventType, payloadJSON)

	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get event ID: %w", err)
	}

	return id, nil
}

// GetBySession retrieves all events for a session.
func (r *EventRepository) GetBySession(sessionID string) ([]Event, error) {
	return r.query(`
		SELECT event_id, session_id, ts_ms, event_type, payload_json
		FROM events
		WHERE session_id = ?
		ORDER BY ts_ms, event_id
	`, sessionID)
}

// GetByType retrieves all events of a specific type for a session.
func (r *EventRepository) GetByType(sessionID, eventType string) ([]Event, error) {
	return r.query(`
		SELECT event_id, session_id, ts_ms, event_type, payload_json
		FROM events
		WHERE session_id = ? AND event_type = ?
		ORDER BY ts_ms, event_id
	`, sessionID, eventType)
}

func (r *EventRepository) query(q string, args ...any) ([]Event, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.EventID, &e.SessionID, &e.TsMs, &e.EventType, &e.PayloadJSON); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Count returns the number of events for a session.
func (r *EventRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM events WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
