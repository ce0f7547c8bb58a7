package rubiks

import "fmt"

// Shuffle lengths are drawn from [shuffleMin, shuffleMax).
const (
	shuffleMin = 100
	shuffleMax = 200
)

// Shuffle applies between 100 and 199 random operations. The stack must be
// empty so the shuffle can be undone exactly.
func (c *Cube) Shuffle() error {
	if len(c.stack) > 0 {
		return ErrStackNotEmpty
	}
	return c.ShuffleN(shuffleMin + c.rng.IntN(shuffleMax-shuffleMin))
}

// ShuffleN applies n random operations. Most are slice turns; about one in
// four is a rotation and one in twenty an inversion.
func (c *Cube) ShuffleN(n int) error {
	if len(c.stack) > 0 {
		return ErrStackNotEmpty
	}
	if n < 0 {
		return fmt.Errorf("%w: negative shuffle length %d", ErrInvalidOperation, n)
	}

	for i := 0; i < n; i++ {
		if err := c.Apply(c.randomOperation()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cube) randomOperation() Operation {
	p := c.rng.Float64()
	switch {
	case p > 0.95:
		return inversions[c.rng.IntN(len(inversions))]
	case p > 0.70:
		return rotations[c.rng.IntN(len(rotations))]
	default:
		return shifts[c.rng.IntN(len(shifts))]
	}
}

// Unshuffle undoes every operation on the stack, newest first.
func (c *Cube) Unshuffle() error {
	if len(c.stack) == 0 {
		return ErrStackEmpty
	}
	for len(c.stack) > 0 {
		if _, err := c.Undo(); err != nil {
			return err
		}
	}
	return nil
}

// Replay re-executes a recorded step log. An undo step must match the
// inverse of the operation on top of the stack.
func (c *Cube) Replay(steps []Step) error {
	for i, s := range steps {
		if !s.Undo {
			if err := c.Apply(s.Op); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			continue
		}

		n := len(c.stack)
		if n == 0 {
			return fmt.Errorf("step %d: %w", i, ErrStackEmpty)
		}
		if c.stack[n-1].Inverse() != s.Op {
			return fmt.Errorf("step %d: %w: undo %s does not match %s", i, ErrInvalidOperation, s.Op, c.stack[n-1])
		}
		if _, err := c.Undo(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
