package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

var (
	replaySpeed float64
	replayStep  bool
	replayLast  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Replay a recorded session step by step on a fresh cube, at the pace it
was recorded.

Usage:
  rubiks session replay --last
  rubiks session replay <session-id> --speed 4
  rubiks session replay <session-id> --step`,
	RunE: runReplay,
}

func init() {
	sessionCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through manually")
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent session")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := resolveSessionID(db, args, replayLast)
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
	if len(records) == 0 {
		return fmt.Errorf("no steps found for session %s", sessionID)
	}

	var opts []rubiks.Option
	if sess.Seed != nil {
		opts = append(opts, rubiks.WithSeed(*sess.Seed))
	}

	model := newReplayModel(sessionID, records, opts, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	if model.err != nil {
		return model.err
	}

	return nil
}

// Replay model
type replayModel struct {
	sessionID string
	records   []storage.StepRecord
	opts      []rubiks.Option
	index     int
	speed     float64
	stepMode  bool
	paused    bool
	tracker   *rubiks.Tracker
	elapsed   time.Duration
	lastTsMs  int64
	err       error
	quitting  bool
}

type replayStepMsg struct{ index int }

func newReplayModel(sessionID string, records []storage.StepRecord, opts []rubiks.Option, speed float64, stepMode bool) *replayModel {
	if speed <= 0 {
		speed = 1
	}
	return &replayModel{
		sessionID: sessionID,
		records:   records,
		opts:      opts,
		speed:     speed,
		stepMode:  stepMode,
		paused:    stepMode, // Start paused in step mode
		tracker:   rubiks.NewTracker(opts...),
	}
}

func (m *replayModel) Init() tea.Cmd {
	if m.stepMode {
		return nil
	}
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if m.index >= len(m.records) {
		return nil
	}

	rec := m.records[m.index]
	delay := time.Duration(float64(rec.TsMs-m.lastTsMs)/m.speed) * time.Millisecond
	if m.index == 0 || delay < 0 {
		delay = 0
	}

	index := m.index
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayStepMsg{index: index}
	})
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.paused {
				m.advance()
			} else {
				m.paused = true
			}

		case "p":
			m.paused = !m.paused
			if !m.paused {
				return m, m.scheduleNext()
			}

		case "r":
			m.index = 0
			m.lastTsMs = 0
			m.elapsed = 0
			m.err = nil
			m.tracker = rubiks.NewTracker(m.opts...)

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayStepMsg:
		// Ignore ticks scheduled before a pause or reset.
		if !m.paused && msg.index == m.index {
			m.advance()
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

// advance applies the next recorded step. Undo steps pop the stack the
// same way they did when recorded.
func (m *replayModel) advance() {
	if m.index >= len(m.records) || m.err != nil {
		return
	}

	rec := m.records[m.index]
	step, err := rec.Step()
	if err == nil {
		err = m.tracker.Replay([]rubiks.Step{step})
	}
	if err != nil {
		m.err = err
		return
	}

	m.lastTsMs = rec.TsMs
	m.elapsed = time.Duration(rec.TsMs) * time.Millisecond
	m.index++
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Session Replay " + shortID(m.sessionID)))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Step %d/%d", m.index, len(m.records))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n", m.speed))
	b.WriteString(fmt.Sprintf("Time: %s\n\n", formatDuration(m.elapsed)))

	b.WriteString(renderNet(m.tracker.Faces()))
	b.WriteString(fmt.Sprintf("Stack depth: %d\n", len(m.tracker.Stack())))

	if m.index > 0 {
		last := m.records[m.index-1]
		label := last.Operation
		if last.Undo {
			label = "undo " + label
		}
		b.WriteString("Last: ")
		b.WriteString(opStyle.Render(label))
		b.WriteString("\n")
	}
	if m.index >= len(m.records) {
		b.WriteString(menuStyle.Render("End of session"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	help := "SPACE/n=next  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next step  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
