package rubiks

import (
	"errors"
	"testing"
)

func TestShuffleUnshuffleRoundTrip(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		c := New(WithSeed(seed))
		before := c.State()

		if err := c.Shuffle(); err != nil {
			t.Fatalf("seed %d: Shuffle() = %v", seed, err)
		}
		if err := c.Verify(); err != nil {
			t.Fatalf("seed %d: after shuffle: %v", seed, err)
		}
		if c.IsSolved() {
			continue // every step cancelled; nothing to undo
		}
		if err := c.Unshuffle(); err != nil {
			t.Fatalf("seed %d: Unshuffle() = %v", seed, err)
		}
		if c.State() != before {
			t.Errorf("seed %d: unshuffle should restore the starting state", seed)
			t.Log(c.String())
		}
		if !c.IsSolved() {
			t.Errorf("seed %d: stack should be empty after unshuffle", seed)
		}
	}
}

func TestShuffleLength(t *testing.T) {
	steps := 0
	c := New(WithSeed(7), WithStepHook(func(Step) { steps++ }))
	if err := c.Shuffle(); err != nil {
		t.Fatal(err)
	}
	if steps < shuffleMin || steps >= shuffleMax {
		t.Errorf("shuffle ran %d steps, want [%d, %d)", steps, shuffleMin, shuffleMax)
	}
}

func TestShuffleIsDeterministicForASeed(t *testing.T) {
	a := New(WithSeed(99))
	b := New(WithSeed(99))
	a.Shuffle()
	b.Shuffle()
	if a.State() != b.State() {
		t.Error("cubes shuffled with the same seed should match")
	}
}

func TestShuffleRequiresEmptyStack(t *testing.T) {
	c := New()
	c.Apply(ShiftTopRowLeft)
	before := c.State()

	if err := c.Shuffle(); !errors.Is(err, ErrStackNotEmpty) {
		t.Errorf("Shuffle() = %v, want ErrStackNotEmpty", err)
	}
	if err := c.ShuffleN(5); !errors.Is(err, ErrStackNotEmpty) {
		t.Errorf("ShuffleN(5) = %v, want ErrStackNotEmpty", err)
	}
	if c.State() != before || len(c.Stack()) != 1 {
		t.Error("a rejected shuffle should change nothing")
	}
}

func TestShuffleNEdgeCases(t *testing.T) {
	c := New()
	if err := c.ShuffleN(0); err != nil {
		t.Errorf("ShuffleN(0) = %v", err)
	}
	if !c.IsSolved() || !c.IsUniform() {
		t.Error("ShuffleN(0) should do nothing")
	}
	if err := c.ShuffleN(-1); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("ShuffleN(-1) = %v, want ErrInvalidOperation", err)
	}
}

func TestUnshuffleEmptyStack(t *testing.T) {
	c := New()
	if err := c.Unshuffle(); !errors.Is(err, ErrStackEmpty) {
		t.Errorf("Unshuffle() = %v, want ErrStackEmpty", err)
	}
	if _, err := c.Undo(); !errors.Is(err, ErrStackEmpty) {
		t.Errorf("Undo() = %v, want ErrStackEmpty", err)
	}
}

func TestUnshuffleDoesNotPush(t *testing.T) {
	var steps []Step
	c := New(WithSeed(3), WithStepHook(func(s Step) { steps = append(steps, s) }))
	c.ApplyAll(RotateUp, ShiftLeftColumnUp, InvertVertical)

	steps = nil
	if err := c.Unshuffle(); err != nil {
		t.Fatal(err)
	}

	want := []Operation{InvertVertical, ShiftLeftColumnDown, RotateDown}
	if len(steps) != len(want) {
		t.Fatalf("unshuffle ran %d steps, want %d", len(steps), len(want))
	}
	for i, s := range steps {
		if !s.Undo || s.Op != want[i] {
			t.Errorf("step %d = %+v, want undo of %s", i, s, want[i])
		}
		if s.Depth != len(want)-1-i {
			t.Errorf("step %d depth = %d, want %d", i, s.Depth, len(want)-1-i)
		}
	}
}

func TestReplayRebuildsState(t *testing.T) {
	var steps []Step
	c := New(WithSeed(11), WithStepHook(func(s Step) { steps = append(steps, s) }))
	c.ShuffleN(40)
	c.Undo()
	c.Undo()
	c.ResetPerspective()

	replayed := New()
	if err := replayed.Replay(steps); err != nil {
		t.Fatal(err)
	}
	if replayed.State() != c.State() {
		t.Error("replay should rebuild the same state")
	}
	if FormatOperations(replayed.Stack()) != FormatOperations(c.Stack()) {
		t.Error("replay should rebuild the same stack")
	}
}

func TestReplayRejectsMismatchedUndo(t *testing.T) {
	c := New()
	err := c.Replay([]Step{{Op: RotateUp}, {Op: RotateUp, Undo: true}})
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Replay() = %v, want ErrInvalidOperation", err)
	}

	err = New().Replay([]Step{{Op: RotateDown, Undo: true}})
	if !errors.Is(err, ErrStackEmpty) {
		t.Errorf("Replay() of a bare undo = %v, want ErrStackEmpty", err)
	}
}
