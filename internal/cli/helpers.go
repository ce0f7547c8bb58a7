package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/recorder"
	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

var errNoActiveSession = errors.New("no active session (start one with: rubiks session start)")

func openDB() (*storage.DB, error) {
	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func openStateFile() (*recorder.StateFile, error) {
	sf, err := recorder.NewStateFile(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return sf, nil
}

// activeSession resumes the session named in the state file and hands its
// tracker to fn. The session stays open afterwards.
func activeSession(cmd *cobra.Command, fn func(*recorder.Session, *rubiks.Tracker) error) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}
	if !stateFile.HasActiveSession() {
		return errNoActiveSession
	}

	session := recorder.NewSession(db, stateFile, loggerFor(cmd))
	tracker, err := session.Resume(stateFile.ActiveSessionID())
	if err != nil {
		if errors.Is(err, recorder.ErrSessionNotFound) || errors.Is(err, recorder.ErrSessionEnded) {
			_ = stateFile.ClearActiveSession()
		}
		return fmt.Errorf("failed to resume session: %w", err)
	}
	defer session.Detach()

	if err := fn(session, tracker); err != nil {
		return err
	}
	return session.Err()
}

// resolveSessionID picks the session named by args, or the latest one
// when last is set.
func resolveSessionID(db *storage.DB, args []string, last bool) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !last {
		return "", fmt.Errorf("please provide a session ID or use --last")
	}

	sess, err := storage.NewSessionRepository(db).GetLast()
	if err != nil {
		return "", fmt.Errorf("failed to get latest session: %w", err)
	}
	if sess == nil {
		return "", fmt.Errorf("no sessions found")
	}
	return sess.SessionID, nil
}

// replaySession rebuilds a session's cube from its stored steps without
// recording anything.
func replaySession(db *storage.DB, sessionID string) (*rubiks.Tracker, error) {
	sess, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}

	records, err := storage.NewStepRepository(db).GetBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	steps, err := storage.ToSteps(records)
	if err != nil {
		return nil, err
	}

	var opts []rubiks.Option
	if sess.Seed != nil {
		opts = append(opts, rubiks.WithSeed(*sess.Seed))
	}
	t := rubiks.NewTracker(opts...)
	if err := t.Replay(steps); err != nil {
		return nil, fmt.Errorf("failed to replay session: %w", err)
	}
	return t, nil
}

func seedOptions() []rubiks.Option {
	if s := cfg.SeedPtr(); s != nil {
		return []rubiks.Option{rubiks.WithSeed(*s)}
	}
	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

// wrapOps joins operation keys into lines of about width characters.
func wrapOps(ops []string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, op := range ops {
		if line.Len() > 0 && line.Len()+len(op)+1 > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(op)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
