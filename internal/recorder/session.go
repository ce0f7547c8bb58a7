package recorder

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

// Errors returned by Session.
var (
	ErrAlreadyRecording = errors.New("recorder: session already in progress")
	ErrNotRecording     = errors.New("recorder: no session in progress")
	ErrSessionNotFound  = errors.New("recorder: session not found")
	ErrSessionEnded     = errors.New("recorder: session already ended")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session records every step of a tracker into the database.
type Session struct {
	db        *storage.DB
	stateFile *StateFile
	logger    *slog.Logger

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	stepIndex int
	tracker   *rubiks.Tracker
	err       error

	// Last recorded orientation, to detect changes
	lastFront   rubiks.Color
	lastTop     rubiks.Color
	haveOrients bool

	// Repositories
	sessionRepo     *storage.SessionRepository
	stepRepo        *storage.StepRepository
	eventRepo       *storage.EventRepository
	orientationRepo *storage.OrientationRepository

	onStep func(rubiks.Step)
}

// NewSession creates a new session manager. stateFile may be nil.
func NewSession(db *storage.DB, stateFile *StateFile, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		db:              db,
		stateFile:       stateFile,
		logger:          logger,
		state:           StateIdle,
		sessionRepo:     storage.NewSessionRepository(db),
		stepRepo:        storage.NewStepRepository(db),
		eventRepo:       storage.NewEventRepository(db),
		orientationRepo: storage.NewOrientationRepository(db),
	}
}

// SetStepCallback sets a callback fired after each step is stored.
func (s *Session) SetStepCallback(cb func(rubiks.Step)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStep = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// Tracker returns the tracker being recorded, or nil when idle.
func (s *Session) Tracker() *rubiks.Tracker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker
}

// StepCount returns the number of steps stored so far.
func (s *Session) StepCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stepIndex
}

// Err returns the first error hit while storing steps, if any.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func trackerOptions(seed *uint64) []rubiks.Option {
	if seed == nil {
		return nil
	}
	return []rubiks.Option{rubiks.WithSeed(*seed)}
}

// Start creates a session and returns a new tracker whose steps are
// recorded into it.
func (s *Session) Start(notes string, seed *uint64, appVersion string) (*rubiks.Tracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return nil, ErrAlreadyRecording
	}

	sessionID, err := s.sessionRepo.Create(notes, seed, appVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	tracker := rubiks.NewTracker(trackerOptions(seed)...)
	s.begin(sessionID, time.Now(), 0, tracker)
	s.haveOrients = false

	s.logger.Info("session started", "session", sessionID)
	return tracker, nil
}

// Resume reopens an unfinished session, replays its stored steps onto a
// new tracker and continues recording.
func (s *Session) Resume(sessionID string) (*rubiks.Tracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return nil, ErrAlreadyRecording
	}

	sess, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if !sess.Active() {
		return nil, ErrSessionEnded
	}

	records, err := s.stepRepo.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	steps, err := storage.ToSteps(records)
	if err != nil {
		return nil, err
	}

	// Replay before the callback is attached so nothing is stored twice.
	tracker := rubiks.NewTracker(trackerOptions(sess.Seed)...)
	if err := tracker.Replay(steps); err != nil {
		return nil, fmt.Errorf("failed to replay session: %w", err)
	}

	s.begin(sessionID, sess.StartedAt, len(records), tracker)

	last, err := s.orientationRepo.GetLast(sessionID)
	s.haveOrients = false
	if err == nil && last != nil {
		front, okF := rubiks.ParseColor(last.FrontColor)
		top, okT := rubiks.ParseColor(last.TopColor)
		if okF && okT {
			s.lastFront, s.lastTop, s.haveOrients = front, top, true
		}
	}

	if _, err := s.eventRepo.Create(sessionID, s.elapsedMs(), storage.EventResume, map[string]int{"steps": len(steps)}); err != nil {
		s.logger.Warn("failed to record resume", "session", sessionID, "err", err)
	}

	s.logger.Info("session resumed", "session", sessionID, "steps", len(steps))
	return tracker, nil
}

// begin switches to recording. Caller holds s.mu.
func (s *Session) begin(sessionID string, startTime time.Time, nextIndex int, tracker *rubiks.Tracker) {
	s.sessionID = sessionID
	s.startTime = startTime
	s.stepIndex = nextIndex
	s.tracker = tracker
	s.err = nil
	s.state = StateRecording

	tracker.SetStepCallback(s.handleStep)

	if s.stateFile != nil {
		if err := s.stateFile.SetActiveSession(sessionID); err != nil {
			s.logger.Warn("failed to update state file", "err", err)
		}
	}
}

func (s *Session) elapsedMs() int64 {
	return time.Since(s.startTime).Milliseconds()
}

// handleStep runs inside the tracker's lock for every executed step.
func (s *Session) handleStep(step rubiks.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return
	}

	tsMs := s.elapsedMs()
	if _, err := s.stepRepo.Create(s.sessionID, s.stepIndex, tsMs, step); err != nil {
		s.fail(err)
		return
	}

	if !s.haveOrients || step.Front != s.lastFront || step.Top != s.lastTop {
		_, err := s.orientationRepo.Create(s.sessionID, tsMs, s.stepIndex, step.Front.Name(), step.Top.Name())
		if err != nil {
			s.fail(err)
		}
		s.lastFront, s.lastTop, s.haveOrients = step.Front, step.Top, true
	}

	s.logger.Debug("step recorded", "index", s.stepIndex, "op", step.Op.String(), "undo", step.Undo, "depth", step.Depth)
	s.stepIndex++

	if s.onStep != nil {
		s.onStep(step)
	}
}

func (s *Session) fail(err error) {
	if s.err == nil {
		s.err = err
	}
	s.logger.Error("failed to record step", "session", s.sessionID, "err", err)
}

// MarkEvent records a session-level event with an optional JSON payload.
func (s *Session) MarkEvent(eventType string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	if _, err := s.eventRepo.Create(s.sessionID, s.elapsedMs(), eventType, payload); err != nil {
		return fmt.Errorf("failed to mark event: %w", err)
	}
	return nil
}

// Shuffle shuffles the tracked cube and records the shuffle. n <= 0 picks
// a random length.
func (s *Session) Shuffle(n int) error {
	tracker := s.Tracker()
	if tracker == nil {
		return ErrNotRecording
	}

	before := s.StepCount()
	var err error
	if n > 0 {
		err = tracker.ShuffleN(n)
	} else {
		err = tracker.Shuffle()
	}
	if err != nil {
		return err
	}

	return s.MarkEvent(storage.EventShuffle, map[string]int{"steps": s.StepCount() - before})
}

// Unshuffle undoes the tracked cube's stack and records it.
func (s *Session) Unshuffle() error {
	tracker := s.Tracker()
	if tracker == nil {
		return ErrNotRecording
	}

	before := s.StepCount()
	if err := tracker.Unshuffle(); err != nil {
		return err
	}
	return s.MarkEvent(storage.EventUnshuffle, map[string]int{"steps": s.StepCount() - before})
}

// ResetPerspective resets the tracked cube's orientation and records it.
func (s *Session) ResetPerspective() (int, error) {
	tracker := s.Tracker()
	if tracker == nil {
		return 0, ErrNotRecording
	}

	n, err := tracker.ResetPerspective()
	if err != nil {
		return n, err
	}
	return n, s.MarkEvent(storage.EventResetPerspective, map[string]int{"steps": n})
}

// End ends the current session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	if err := s.sessionRepo.End(s.sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded

	if s.stateFile != nil {
		if err := s.stateFile.ClearActiveSession(); err != nil {
			s.logger.Warn("failed to clear state file", "err", err)
		}
	}

	s.logger.Info("session ended", "session", s.sessionID, "steps", s.stepIndex)
	return nil
}

// Detach stops recording without ending the session, so it can be resumed.
func (s *Session) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRecording {
		s.state = StateIdle
	}
}
