package rubiks

import "sync"

// Tracker wraps a Cube for use from several goroutines and keeps the full
// step history. Every call holds the tracker's lock for the whole
// operation, so a snapshot and its commit are never interleaved.
type Tracker struct {
	mu     sync.Mutex
	cube   *Cube
	opts   []Option
	steps  []Step
	solved bool

	stepCallback   func(Step)
	solvedCallback func()
}

// NewTracker creates a tracker around a new cube built with opts.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{opts: opts}
	t.cube = t.newCube()
	t.solved = true
	return t
}

func (t *Tracker) newCube() *Cube {
	opts := append(append([]Option(nil), t.opts...), WithStepHook(t.record))
	return New(opts...)
}

// SetStepCallback sets a callback that fires after every step.
// Callbacks run with the tracker locked and must not call back into it.
func (t *Tracker) SetStepCallback(cb func(Step)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stepCallback = cb
}

// SetSolvedCallback sets a callback that fires when the stack empties.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.solvedCallback = cb
}

// record runs inside the cube's step hook.
func (t *Tracker) record(s Step) {
	t.steps = append(t.steps, s)
	if t.stepCallback != nil {
		t.stepCallback(s)
	}

	// Only fire on the transition back to an empty stack.
	solved := s.Depth == 0
	if solved && !t.solved && t.solvedCallback != nil {
		t.solvedCallback()
	}
	t.solved = solved
}

// Reset replaces the cube with a new one and clears the history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps = nil
	t.solved = true
	t.cube = t.newCube()
}

// Apply performs an operation.
func (t *Tracker) Apply(op Operation) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Apply(op)
}

// ApplyAll performs operations in order.
func (t *Tracker) ApplyAll(ops ...Operation) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.ApplyAll(ops...)
}

// Undo reverts the most recent operation.
func (t *Tracker) Undo() (Operation, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Undo()
}

// ResetPerspective returns the cube to the reference orientation.
func (t *Tracker) ResetPerspective() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.ResetPerspective()
}

// Shuffle applies a random-length shuffle.
func (t *Tracker) Shuffle() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Shuffle()
}

// ShuffleN applies n random operations.
func (t *Tracker) ShuffleN(n int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.ShuffleN(n)
}

// Unshuffle undoes every operation on the stack.
func (t *Tracker) Unshuffle() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Unshuffle()
}

// Replay re-executes recorded steps on the current cube.
func (t *Tracker) Replay(steps []Step) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Replay(steps)
}

// Steps returns a copy of every step executed since the last reset.
func (t *Tracker) Steps() []Step {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Step(nil), t.steps...)
}

// Stack returns a copy of the operation stack.
func (t *Tracker) Stack() []Operation {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Stack()
}

// IsSolved reports whether the stack is empty.
func (t *Tracker) IsSolved() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.IsSolved()
}

// Faces returns the six faces, front first.
func (t *Tracker) Faces() []FaceView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Faces()
}

// State returns a comparable picture of the cube.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.State()
}

// Verify checks the cube's structural invariants.
func (t *Tracker) Verify() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Verify()
}

// CubeString returns the cube as an unfolded net.
func (t *Tracker) CubeString() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.String()
}
