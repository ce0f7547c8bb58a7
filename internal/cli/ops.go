package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/recorder"
)

var (
	shuffleCount int
	showPlain    bool
)

var applyCmd = &cobra.Command{
	Use:   "apply OPERATION...",
	Short: "Apply operations to the cube",
	Long: `Apply one or more operations, by key, to the active session's cube.
Without an active session the operations run on a fresh cube that is
printed and then discarded.

Operation keys:
  rotate_up rotate_down rotate_left_vertical rotate_right_vertical
  rotate_left_horizontal rotate_right_horizontal
  invert_horizontal invert_vertical
  shift_left_column_up shift_left_column_down
  shift_right_column_up shift_right_column_down
  shift_top_row_left shift_top_row_right
  shift_bottom_row_left shift_bottom_row_right

Example:
  rubiks apply rotate-up shift_top_row_left`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle a solved cube",
	Long:  `Shuffle the active session's cube with a random number of operations, or exactly --n of them.`,
	RunE:  runShuffle,
}

var unshuffleCmd = &cobra.Command{
	Use:   "unshuffle",
	Short: "Undo every operation since the cube was solved",
	RunE:  runUnshuffle,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the cube to its reference orientation",
	Long:  `Rotate the whole cube until Blue faces front and White is on top.`,
	RunE:  runReset,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cube",
	Long:  `Print the active session's cube, or a solved cube when no session is active.`,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(applyCmd, shuffleCmd, unshuffleCmd, resetCmd, showCmd)

	shuffleCmd.Flags().IntVar(&shuffleCount, "n", 0, "Number of operations (default: random 100-200)")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print the letter net without colour")
}

func printCube(t *rubiks.Tracker) {
	if showPlain {
		fmt.Print(t.CubeString())
	} else {
		fmt.Print(renderNet(t.Faces()))
	}
	fmt.Printf("Stack depth: %d\n", len(t.Stack()))
}

func runApply(cmd *cobra.Command, args []string) error {
	ops, err := rubiks.ParseOperations(strings.Join(args, " "))
	if err != nil {
		return err
	}

	err = activeSession(cmd, func(_ *recorder.Session, t *rubiks.Tracker) error {
		if err := t.ApplyAll(ops...); err != nil {
			return err
		}
		printCube(t)
		return nil
	})
	if !errors.Is(err, errNoActiveSession) {
		return err
	}

	t := rubiks.NewTracker(seedOptions()...)
	if err := t.ApplyAll(ops...); err != nil {
		return err
	}
	printCube(t)
	return nil
}

func runShuffle(cmd *cobra.Command, args []string) error {
	if shuffleCount < 0 {
		return fmt.Errorf("--n must not be negative")
	}

	return activeSession(cmd, func(s *recorder.Session, t *rubiks.Tracker) error {
		before := s.StepCount()
		if err := s.Shuffle(shuffleCount); err != nil {
			if errors.Is(err, rubiks.ErrStackNotEmpty) {
				return fmt.Errorf("the cube is already shuffled, run 'rubiks unshuffle' first")
			}
			return err
		}
		printCube(t)
		fmt.Printf("Shuffled with %d operation(s)\n", s.StepCount()-before)
		return nil
	})
}

func runUnshuffle(cmd *cobra.Command, args []string) error {
	return activeSession(cmd, func(s *recorder.Session, t *rubiks.Tracker) error {
		before := s.StepCount()
		if err := s.Unshuffle(); err != nil {
			if errors.Is(err, rubiks.ErrStackEmpty) {
				return fmt.Errorf("cannot unshuffle a solved cube, perform some operations first")
			}
			return err
		}
		printCube(t)
		fmt.Printf("Undid %d operation(s)\n", s.StepCount()-before)
		return nil
	})
}

func runReset(cmd *cobra.Command, args []string) error {
	return activeSession(cmd, func(s *recorder.Session, t *rubiks.Tracker) error {
		n, err := s.ResetPerspective()
		if err != nil {
			return err
		}
		printCube(t)
		fmt.Printf("Perspective reset in %d step(s)\n", n)
		return nil
	})
}

func runShow(cmd *cobra.Command, args []string) error {
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
		printCube(rubiks.NewTracker())
		return nil
	}

	t, err := replaySession(db, stateFile.ActiveSessionID())
	if err != nil {
		return err
	}
	if err := t.Verify(); err != nil {
		return err
	}
	printCube(t)
	return nil
}
