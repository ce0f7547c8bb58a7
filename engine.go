package rubiks

import "fmt"

// snapshot copies the mutable state of all six faces.
func (c *Cube) snapshot() snapshot {
	var s snapshot
	for id := range c.faces {
		s[id] = c.faces[id].faceState
	}
	return s
}

// commit writes six next-state descriptors onto the live faces. Every
// descriptor is checked first; on error nothing is written.
func (c *Cube) commit(next *[numFaces]faceState) error {
	front := noFace
	var seenRole [numRoles]bool
	var seenPiece [numPieces]bool

	for id := range next {
		s := &next[id]
		if err := s.validate(); err != nil {
			return err
		}
		if seenRole[s.role] {
			return fmt.Errorf("%w: role %s assigned twice", ErrMalformedTransfer, s.role)
		}
		seenRole[s.role] = true
		if s.role == RoleFront {
			front = FaceID(id)
		}
		for _, p := range s.grid {
			if int(p) >= numPieces || seenPiece[p] {
				return fmt.Errorf("%w: piece %d placed twice", ErrMalformedTransfer, p)
			}
			seenPiece[p] = true
		}
		if s.grid[4] != c.faces[id].grid[4] {
			return fmt.Errorf("%w: centre of %s face moved", ErrMalformedTransfer, c.faces[id].color.Name())
		}
	}
	if front == noFace {
		return fmt.Errorf("%w: no face takes the front role", ErrMalformedTransfer)
	}

	for id := range next {
		c.faces[id].faceState = next[id]
		for pos, p := range next[id].grid {
			c.pieces[p].face = FaceID(id)
			c.pieces[p].pos = pos
		}
	}
	c.front = front
	return nil
}

// times runs fn n times, stopping at the first error.
func times(n int, fn func(*Cube) error) func(*Cube) error {
	return func(c *Cube) error {
		for i := 0; i < n; i++ {
			if err := fn(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// chain runs each step in order, stopping at the first error.
func chain(steps ...func(*Cube) error) func(*Cube) error {
	return func(c *Cube) error {
		for _, step := range steps {
			if err := step(c); err != nil {
				return err
			}
		}
		return nil
	}
}
