package rubiks

import (
	"fmt"
	"math/rand/v2"
)

// Step is one operation as it was executed. Undo steps come from popping
// the stack and leave it otherwise untouched.
type Step struct {
	Op    Operation
	Undo  bool
	Depth int // stack depth after the step

	// Orientation after the step. Ignored by Replay.
	Front Color
	Top   Color
}

// Cube is a 3x3x3 puzzle: a graph of six faces holding 54 glued stickers,
// the face currently in front, and the stack of operations applied since
// the last time the stack was empty.
//
// A Cube is not safe for concurrent use. See Tracker.
type Cube struct {
	faces  [numFaces]face
	pieces [numPieces]piece
	front  FaceID
	stack  []Operation

	rng      *rand.Rand
	stepHook func(Step)
}

// New builds a cube in the reference orientation: blue in front, red on
// the left, orange on the right, white on top, green at the back and
// yellow underneath.
func New(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{rng: cfg.rng, stepHook: cfg.stepHook}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if err := c.build(); err != nil {
		panic(err)
	}
	return c
}

// Rotate turns the whole cube a quarter turn.
func (c *Cube) Rotate(op Operation) error {
	return c.perform(FamilyRotation, op)
}

// Invert turns the whole cube a half turn.
func (c *Cube) Invert(op Operation) error {
	return c.perform(FamilyInversion, op)
}

// Shift turns one outer layer a quarter turn.
func (c *Cube) Shift(op Operation) error {
	return c.perform(FamilyShift, op)
}

// Apply performs any operation, dispatching on its family.
func (c *Cube) Apply(op Operation) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOperation, op)
	}
	return c.perform(op.Family(), op)
}

// ApplyAll performs each operation in order, stopping at the first error.
func (c *Cube) ApplyAll(ops ...Operation) error {
	for _, op := range ops {
		if err := c.Apply(op); err != nil {
			return err
		}
	}
	return nil
}

// perform executes op and records it on the stack. An operation that
// undoes the top of the stack pops it instead of pushing.
func (c *Cube) perform(fam Family, op Operation) error {
	fn, ok := tableFor(fam)[op]
	if !ok {
		return fmt.Errorf("%w: %s is not a %s", ErrInvalidOperation, op, fam)
	}
	if err := fn(c); err != nil {
		return err
	}

	if n := len(c.stack); n > 0 && c.stack[n-1] == op.Inverse() {
		c.stack = c.stack[:n-1]
	} else {
		c.stack = append(c.stack, op)
	}
	c.notify(Step{Op: op, Depth: len(c.stack)})
	return nil
}

// Undo pops the most recent operation and applies its inverse without
// touching the stack again. It returns the operation applied.
func (c *Cube) Undo() (Operation, error) {
	n := len(c.stack)
	if n == 0 {
		return OpInvalid, ErrStackEmpty
	}

	inv := c.stack[n-1].Inverse()
	fn, ok := tableFor(inv.Family())[inv]
	if !ok {
		return OpInvalid, fmt.Errorf("%w: %s has no inverse", ErrInvalidOperation, c.stack[n-1])
	}
	if err := fn(c); err != nil {
		return OpInvalid, err
	}

	c.stack = c.stack[:n-1]
	c.notify(Step{Op: inv, Undo: true, Depth: len(c.stack)})
	return inv, nil
}

func (c *Cube) notify(s Step) {
	if c.stepHook == nil {
		return
	}
	s.Front = c.Front()
	s.Top = c.Face(RoleTop).Color
	c.stepHook(s)
}

// Stack returns a copy of the operation stack, oldest first.
func (c *Cube) Stack() []Operation {
	return append([]Operation(nil), c.stack...)
}

// StackDepth returns the number of operations on the stack.
func (c *Cube) StackDepth() int {
	return len(c.stack)
}

// IsSolved reports whether every applied operation has been undone.
func (c *Cube) IsSolved() bool {
	return len(c.stack) == 0
}

// Clone returns an independent copy of the cube. The copy shares the
// random source and step hook.
func (c *Cube) Clone() *Cube {
	clone := *c
	clone.stack = c.Stack()
	return &clone
}
