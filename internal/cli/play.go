package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/logging"
	"github.com/SeamusWaldron/rubiks_cube/internal/recorder"
)

var playRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube menu",
	Long: `Start an interactive menu for manipulating the cube.

Main menu:
  1. Rotate             - turn the whole cube
  2. Invert             - flip the whole cube over
  3. Shift              - move one outer row or column
  4. Reset Perspective  - bring the cube back to its reference orientation
  5. Shuffle            - random or chosen number of operations
  6. Unshuffle          - undo every operation since the cube was solved

Keys: 1-8 or arrows+enter to choose, b/esc for back, q to quit.

With --record every step is stored in the active session (or a new one).`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Record steps to a session")
}

type menuID int

const (
	menuMain menuID = iota
	menuRotations
	menuInversions
	menuShifts
	menuShuffle
	menuShuffleCount
)

var mainOptions = []string{
	"Rotate",
	"Invert",
	"Shift",
	"Reset Perspective",
	"Shuffle",
	"Unshuffle",
}

var shuffleOptions = []string{
	"Random",
	"Choose number of operations",
}

const recentSteps = 12

// Model
type playModel struct {
	tracker *rubiks.Tracker
	session *recorder.Session // nil unless recording
	logger  *slog.Logger

	menu    menuID
	cursor  int
	input   string
	message string
	err     error
	solved  bool

	quitting bool
}

func newPlayModel(tracker *rubiks.Tracker, session *recorder.Session, logger *slog.Logger) *playModel {
	m := &playModel{
		tracker: tracker,
		session: session,
		logger:  logger,
	}
	// Fires synchronously from inside Update.
	tracker.SetSolvedCallback(func() { m.solved = true })
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func opNamesOf(ops []rubiks.Operation) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.DisplayName()
	}
	return names
}

func (m *playModel) options() (string, []string) {
	switch m.menu {
	case menuRotations:
		return "Rotations", opNamesOf(rubiks.Rotations())
	case menuInversions:
		return "Inversions", opNamesOf(rubiks.Inversions())
	case menuShifts:
		return "Shifts", opNamesOf(rubiks.Shifts())
	case menuShuffle, menuShuffleCount:
		return "Shuffle Cube", shuffleOptions
	default:
		return "Main Menu", mainOptions
	}
}

func (m *playModel) open(menu menuID) {
	m.menu = menu
	m.cursor = 0
	m.input = ""
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		m.quitting = true
		if m.session != nil {
			m.session.Detach()
		}
		return m, tea.Quit
	}

	if m.menu == menuShuffleCount {
		m.updateCount(key.String())
		return m, nil
	}

	_, opts := m.options()
	switch k := key.String(); k {
	case "b", "esc":
		if m.menu != menuMain {
			m.open(menuMain)
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case "enter":
		m.choose(m.cursor)
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' && int(k[0]-'1') < len(opts) {
			m.choose(int(k[0] - '1'))
		} else {
			m.setResult("", errors.New("invalid input, please choose a listed option"))
		}
	}

	return m, nil
}

func (m *playModel) updateCount(k string) {
	switch k {
	case "b", "esc":
		m.open(menuShuffle)
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case "enter":
		n, err := strconv.Atoi(m.input)
		if err != nil {
			m.setResult("", errors.New("invalid input, please enter a number"))
			m.input = ""
			return
		}
		m.shuffle(n, false)
		m.open(menuMain)
	default:
		if len(k) == 1 && k[0] >= '0' && k[0] <= '9' && len(m.input) < 4 {
			m.input += k
		}
	}
}

func (m *playModel) choose(idx int) {
	switch m.menu {
	case menuMain:
		switch idx {
		case 0:
			m.open(menuRotations)
		case 1:
			m.open(menuInversions)
		case 2:
			m.open(menuShifts)
		case 3:
			m.resetPerspective()
		case 4:
			m.open(menuShuffle)
		case 5:
			m.unshuffle()
		}
	case menuRotations:
		m.apply(rubiks.Rotations()[idx])
		m.open(menuMain)
	case menuInversions:
		m.apply(rubiks.Inversions()[idx])
		m.open(menuMain)
	case menuShifts:
		m.apply(rubiks.Shifts()[idx])
		m.open(menuMain)
	case menuShuffle:
		if idx == 0 {
			m.shuffle(0, true)
			m.open(menuMain)
		} else {
			m.open(menuShuffleCount)
		}
	}
}

func (m *playModel) setResult(message string, err error) {
	if err == nil && m.session != nil {
		err = m.session.Err()
	}
	m.message = message
	m.err = err
	if err != nil {
		m.logger.Debug("action failed", "err", err)
	}
}

func (m *playModel) apply(op rubiks.Operation) {
	m.solved = false
	err := m.tracker.Apply(op)
	m.setResult("Applied: "+op.DisplayName(), err)
}

func (m *playModel) resetPerspective() {
	m.solved = false
	var n int
	var err error
	if m.session != nil {
		n, err = m.session.ResetPerspective()
	} else {
		n, err = m.tracker.ResetPerspective()
	}
	m.setResult(fmt.Sprintf("Perspective reset in %d step(s)", n), err)
}

// shuffle runs a random-length shuffle when random is set and exactly n
// operations otherwise.
func (m *playModel) shuffle(n int, random bool) {
	m.solved = false
	before := len(m.tracker.Steps())

	var err error
	switch {
	case random && m.session != nil:
		err = m.session.Shuffle(0)
	case random:
		err = m.tracker.Shuffle()
	case n == 0:
	case m.session != nil:
		err = m.session.Shuffle(n)
	default:
		err = m.tracker.ShuffleN(n)
	}

	if errors.Is(err, rubiks.ErrStackNotEmpty) {
		err = errors.New("the cube is already shuffled, unshuffle it first")
	}
	m.setResult(fmt.Sprintf("Shuffled with %d operation(s)", len(m.tracker.Steps())-before), err)
}

func (m *playModel) unshuffle() {
	m.solved = false
	var err error
	if m.session != nil {
		err = m.session.Unshuffle()
	} else {
		err = m.tracker.Unshuffle()
	}

	if errors.Is(err, rubiks.ErrStackEmpty) {
		err = errors.New("cannot unshuffle a solved cube, perform some operations first")
	}
	m.setResult("Unshuffled", err)
}

func (m *playModel) View() string {
	if m.quitting {
		if m.session != nil {
			return fmt.Sprintf("Session %s left open. End it with: rubiks session end\n", m.session.SessionID())
		}
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Rubik's Cube"))
	b.WriteString("\n")
	if m.session != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Recording session %s (%d steps)", shortID(m.session.SessionID()), m.session.StepCount())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(renderNet(m.tracker.Faces()))
	b.WriteString("\n")

	stack := m.tracker.Stack()
	b.WriteString(fmt.Sprintf("Stack depth: %d\n", len(stack)))
	if steps := m.tracker.Steps(); len(steps) > 0 {
		start := 0
		b.WriteString("Steps: ")
		if len(steps) > recentSteps {
			start = len(steps) - recentSteps
			b.WriteString("... ")
		}
		parts := make([]string, 0, recentSteps)
		for _, s := range steps[start:] {
			if s.Undo {
				parts = append(parts, statusStyle.Render("undo "+s.Op.String()))
			} else {
				parts = append(parts, opStyle.Render(s.Op.String()))
			}
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	if m.message != "" && m.err == nil {
		b.WriteString(m.message)
		b.WriteString("\n")
	}
	if m.solved {
		b.WriteString(menuStyle.Render("Solved!"))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	title, opts := m.options()
	b.WriteString(menuStyle.Render(title + ":"))
	b.WriteString("\n")
	if m.menu == menuShuffleCount {
		b.WriteString(fmt.Sprintf("Number of operations: %s_\n", m.input))
	} else {
		for i, opt := range opts {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, i+1, opt))
		}
	}
	b.WriteString("\n")

	help := fmt.Sprintf("1-%d/enter=choose  b=back  q=quit", len(opts))
	switch m.menu {
	case menuMain:
		help = fmt.Sprintf("1-%d/enter=choose  q=quit", len(opts))
	case menuShuffleCount:
		help = "digits then enter  b=back  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// openPlayLog sends logs to a file while the full-screen UI owns the
// terminal.
func openPlayLog() (*slog.Logger, string, func()) {
	dir := filepath.Join(filepath.Dir(cfg.StatePath), "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return logging.Discard(), "", func() {}
	}

	path := filepath.Join(dir, fmt.Sprintf("play_%s.log", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return logging.Discard(), "", func() {}
	}

	return logging.NewLogger(f, logging.ParseLevel(cfg.LogLevel)), path, func() { f.Close() }
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, logPath, closeLog := openPlayLog()
	defer closeLog()

	var tracker *rubiks.Tracker
	var session *recorder.Session

	if playRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stateFile, err := openStateFile()
		if err != nil {
			return err
		}

		session = recorder.NewSession(db, stateFile, logger)
		if stateFile.HasActiveSession() {
			fmt.Printf("Resuming active session: %s\n", stateFile.ActiveSessionID())
			tracker, err = session.Resume(stateFile.ActiveSessionID())
		} else {
			tracker, err = session.Start("", cfg.SeedPtr(), version)
		}
		if err != nil {
			return err
		}
		if err := stateFile.SetDBPath(cfg.DBPath); err != nil {
			logger.Warn("failed to update state file", "err", err)
		}
	} else {
		tracker = rubiks.NewTracker(seedOptions()...)
	}

	model := newPlayModel(tracker, session, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if logPath != "" {
		fmt.Printf("Log saved to: %s\n", logPath)
	}
	return nil
}
