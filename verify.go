package rubiks

import "fmt"

// Verify checks the structural invariants of the cube: the face graph
// matches the roles, every piece knows where it is, centres stay home and
// glued pieces still touch. It returns an error wrapping ErrIntegrity.
func (c *Cube) Verify() error {
	if err := c.verifyGraph(); err != nil {
		return err
	}
	if err := c.verifyPieces(); err != nil {
		return err
	}
	if err := c.checkComplements(); err != nil {
		return err
	}
	return c.verifyTouching()
}

func (c *Cube) verifyGraph() error {
	byRole := [numRoles]FaceID{noFace, noFace, noFace, noFace, noFace, noFace}
	for id := range c.faces {
		f := &c.faces[id]
		if f.role >= numRoles || byRole[f.role] != noFace {
			return fmt.Errorf("%w: role %s is not held by exactly one face", ErrIntegrity, f.role)
		}
		byRole[f.role] = FaceID(id)
	}
	if c.faces[c.front].role != RoleFront {
		return fmt.Errorf("%w: front points at the %s face", ErrIntegrity, c.faces[c.front].role)
	}

	for id := range c.faces {
		f := &c.faces[id]
		if f.opposite == noFace || f.opposite == FaceID(id) || c.faces[f.opposite].opposite != FaceID(id) {
			return fmt.Errorf("%w: opposite of %s is not symmetric", ErrIntegrity, f.color.Name())
		}
		if c.faces[f.opposite].role != f.role.Opposite() {
			return fmt.Errorf("%w: %s and its opposite are not in opposite roles", ErrIntegrity, f.color.Name())
		}
		for d, want := range neighbourRoles[f.role] {
			if f.links[d] != byRole[want] {
				return fmt.Errorf("%w: %s link of %s face does not point at %s", ErrIntegrity, d, f.role, want)
			}
		}
	}
	return nil
}

func (c *Cube) verifyPieces() error {
	var seen [numPieces]bool
	var count [numColors]int

	for id := range c.faces {
		f := &c.faces[id]
		for slot, pid := range f.grid {
			if int(pid) >= numPieces || seen[pid] {
				return fmt.Errorf("%w: piece at %s[%d] is missing or duplicated", ErrIntegrity, f.role, slot)
			}
			seen[pid] = true

			p := &c.pieces[pid]
			if p.face != FaceID(id) || p.pos != slot {
				return fmt.Errorf("%w: piece at %s[%d] has a stale position", ErrIntegrity, f.role, slot)
			}
			if p.kind != slotKind(slot) {
				return fmt.Errorf("%w: %s piece in %s slot %s[%d]", ErrIntegrity, p.kind, slotKind(slot), f.role, slot)
			}
			if p.kind == KindCenter && p.color != f.color {
				return fmt.Errorf("%w: centre of %s face is %s", ErrIntegrity, f.color.Name(), p.color.Name())
			}
			count[p.color]++
		}
	}

	for col, n := range count {
		if n != 9 {
			return fmt.Errorf("%w: %d %s stickers", ErrIntegrity, n, Color(col).Name())
		}
	}
	return nil
}

// verifyTouching checks that the pieces found in each slot's touching
// slots are exactly the ones glued to it.
func (c *Cube) verifyTouching() error {
	for id := range c.faces {
		f := &c.faces[id]
		for slot, touches := range complementTable[f.role] {
			p := &c.pieces[f.grid[slot]]
			for _, t := range touches {
				q := c.faces[f.links[t.dir]].grid[t.slot]
				if !p.hasComplement(q) {
					return fmt.Errorf("%w: %s[%d] is not glued to its %s neighbour", ErrIntegrity, f.role, slot, t.dir)
				}
			}
		}
	}
	return nil
}
