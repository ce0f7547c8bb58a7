package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/recorder"
	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

var (
	sessionNotes string
	listLimit    int
	showLast     bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage recorded sessions",
	Long:  `Commands for starting, ending, and inspecting recorded cube sessions.`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new recorded session",
	Long: `Start a new session with a solved cube. Later apply, shuffle, unshuffle
and reset commands act on it until it is ended.`,
	RunE: runSessionStart,
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active session",
	RunE:  runSessionEnd,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display a session's metadata, its step sequence and the cube it ended with.

Use --last to show the most recent session.`,
	RunE: runSessionShow,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.AddCommand(sessionStartCmd)
	sessionStartCmd.Flags().StringVar(&sessionNotes, "notes", "", "Notes for this session")

	sessionCmd.AddCommand(sessionEndCmd)

	sessionCmd.AddCommand(sessionListCmd)
	sessionListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")

	sessionCmd.AddCommand(sessionShowCmd)
	sessionShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent session")
}

func runSessionStart(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	if stateFile.HasActiveSession() {
		return fmt.Errorf("session already in progress: %s\nEnd it first with: rubiks session end", stateFile.ActiveSessionID())
	}

	session := recorder.NewSession(db, stateFile, loggerFor(cmd))
	if _, err := session.Start(sessionNotes, cfg.SeedPtr(), version); err != nil {
		return err
	}
	defer session.Detach()

	if err := stateFile.SetDBPath(cfg.DBPath); err != nil {
		loggerFor(cmd).Warn("failed to update state file", "err", err)
	}

	fmt.Printf("Session started: %s\n", session.SessionID())
	fmt.Println()
	fmt.Println("End with: rubiks session end")

	return nil
}

func runSessionEnd(cmd *cobra.Command, args []string) error {
	var sessionID string
	var steps int
	err := activeSession(cmd, func(s *recorder.Session, _ *rubiks.Tracker) error {
		sessionID = s.SessionID()
		steps = s.StepCount()
		return s.End()
	})
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sess, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	fmt.Printf("Session ended: %s\n", sessionID)
	fmt.Println()
	if sess != nil && sess.DurationMs != nil {
		fmt.Printf("Duration: %s\n", formatDuration(time.Duration(*sess.DurationMs)*time.Millisecond))
	}
	fmt.Printf("Steps: %d\n", steps)
	fmt.Println()
	fmt.Printf("Statistics: rubiks stats %s\n", sessionID)

	return nil
}

func runSessionList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)
	stepRepo := storage.NewStepRepository(db)

	sessions, err := sessionRepo.List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Start a new session with: rubiks session start")
		return nil
	}

	fmt.Printf("Recent sessions (showing %d):\n", len(sessions))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-10s  %-6s  %s\n", "ID", "Started", "Duration", "Steps", "Notes")
	fmt.Println("------------------------------------  --------------------  ----------  ------  -----")

	for _, s := range sessions {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}

		steps := "-"
		if n, _ := stepRepo.Count(s.SessionID); n > 0 {
			steps = fmt.Sprintf("%d", n)
		}

		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}

		status := ""
		if s.Active() {
			status = " (active)"
		}

		fmt.Printf("%-36s  %-20s  %-10s  %-6s  %s%s\n",
			s.SessionID,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			duration,
			steps,
			notes,
			status,
		)
	}

	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := resolveSessionID(db, args, showLast)
	if err != nil {
		return err
	}

	sess, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if sess == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	records, err := storage.NewStepRepository(db).GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get steps: %w", err)
	}
	events, err := storage.NewEventRepository(db).GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}

	fmt.Println("Session Details")
	fmt.Println("===============")
	fmt.Println()

	fmt.Printf("ID:      %s\n", sess.SessionID)
	fmt.Printf("Started: %s\n", sess.StartedAt.Format("2006-01-02 15:04:05"))
	if sess.EndedAt != nil {
		fmt.Printf("Ended:   %s\n", sess.EndedAt.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("Ended:   (active)")
	}
	if sess.Seed != nil {
		fmt.Printf("Seed:    %d\n", *sess.Seed)
	}
	if sess.Notes != nil && *sess.Notes != "" {
		fmt.Printf("Notes:   %s\n", *sess.Notes)
	}
	fmt.Printf("Steps:   %d\n", len(records))
	fmt.Println()

	if len(events) > 0 {
		fmt.Println("Events")
		fmt.Println("------")
		for _, e := range events {
			fmt.Printf("  %8s  %-18s %s\n", formatDuration(time.Duration(e.TsMs)*time.Millisecond), e.EventType, e.PayloadJSON)
		}
		fmt.Println()
	}

	if len(records) > 0 {
		fmt.Println("Steps")
		fmt.Println("-----")
		keys := make([]string, len(records))
		for i, r := range records {
			keys[i] = r.Operation
			if r.Undo {
				keys[i] = "~" + r.Operation
			}
		}
		for _, line := range wrapOps(keys, 72) {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println(strings.Repeat(" ", 2) + statusStyle.Render("~ marks an undo step"))
		fmt.Println()
	}

	t, err := replaySession(db, sessionID)
	if err != nil {
		return err
	}
	fmt.Println("Cube")
	fmt.Println("----")
	printCube(t)

	return nil
}
