package rubiks

import (
	"sync"
	"testing"
)

func TestTrackerRecordsSteps(t *testing.T) {
	tr := NewTracker(WithSeed(1))
	var seen []Step
	tr.SetStepCallback(func(s Step) { seen = append(seen, s) })

	tr.Apply(RotateUp)
	tr.Apply(ShiftTopRowLeft)
	tr.Undo()

	steps := tr.Steps()
	if len(steps) != 3 || len(seen) != 3 {
		t.Fatalf("recorded %d steps, callback saw %d; want 3", len(steps), len(seen))
	}
	if !steps[2].Undo || steps[2].Op != ShiftTopRowRight {
		t.Errorf("last step = %+v, want undo of shift_top_row_right", steps[2])
	}
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := NewTracker(WithSeed(2))
	solved := 0
	tr.SetSolvedCallback(func() { solved++ })

	if err := tr.ShuffleN(25); err != nil {
		t.Fatal(err)
	}
	if tr.IsSolved() {
		t.Skip("shuffle cancelled itself")
	}
	solved = 0
	if err := tr.Unshuffle(); err != nil {
		t.Fatal(err)
	}
	if solved != 1 {
		t.Errorf("solved callback fired %d times, want 1", solved)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Apply(RotateUp)
	tr.Reset()
	if !tr.IsSolved() || len(tr.Steps()) != 0 {
		t.Error("Reset should clear the stack and history")
	}
	if tr.State() != New().State() {
		t.Error("Reset should rebuild the reference cube")
	}
}

func TestTrackerConcurrentUse(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		op := AllOperations()[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				tr.Apply(op)
				tr.Faces()
			}
		}()
	}
	wg.Wait()

	if err := tr.Verify(); err != nil {
		t.Error(err)
		t.Log(tr.CubeString())
	}
	if len(tr.Steps()) != 200 {
		t.Errorf("recorded %d steps, want 200", len(tr.Steps()))
	}
}
