package rubiks

import "fmt"

// defaultRoles is the reference orientation every cube is built in.
var defaultRoles = [numColors]Role{
	Blue:   RoleFront,
	Red:    RoleLeft,
	Orange: RoleRight,
	White:  RoleTop,
	Green:  RoleBack,
	Yellow: RoleBottom,
}

// touch names a slot on a neighbouring face, reached through a link.
type touch struct {
	dir  Direction
	slot int
}

// complementTable lists, for a face in a given role, which neighbour slots
// touch each of its non-centre slots. It depends only on the role, so it
// holds in every orientation and is used both to glue pieces at build time
// and to check them afterwards.
var complementTable = [numRoles][9][]touch{
	RoleFront: {
		0: {{DirLeft, 2}, {DirTop, 6}},
		1: {{DirTop, 7}},
		2: {{DirRight, 0}, {DirTop, 8}},
		3: {{DirLeft, 5}},
		5: {{DirRight, 3}},
		6: {{DirLeft, 8}, {DirBottom, 0}},
		7: {{DirBottom, 1}},
		8: {{DirRight, 6}, {DirBottom, 2}},
	},
	RoleBack: {
		0: {{DirLeft, 2}, {DirTop, 2}},
		1: {{DirTop, 1}},
		2: {{DirRight, 0}, {DirTop, 0}},
		3: {{DirLeft, 5}},
		5: {{DirRight, 3}},
		6: {{DirLeft, 8}, {DirBottom, 8}},
		7: {{DirBottom, 7}},
		8: {{DirRight, 6}, {DirBottom, 6}},
	},
	RoleLeft: {
		0: {{DirLeft, 2}, {DirTop, 0}},
		1: {{DirTop, 3}},
		2: {{DirRight, 0}, {DirTop, 6}},
		3: {{DirLeft, 5}},
		5: {{DirRight, 3}},
		6: {{DirLeft, 8}, {DirBottom, 6}},
		7: {{DirBottom, 3}},
		8: {{DirRight, 6}, {DirBottom, 0}},
	},
	RoleRight: {
		0: {{DirLeft, 2}, {DirTop, 8}},
		1: {{DirTop, 5}},
		2: {{DirRight, 0}, {DirTop, 2}},
		3: {{DirLeft, 5}},
		5: {{DirRight, 3}},
		6: {{DirLeft, 8}, {DirBottom, 2}},
		7: {{DirBottom, 5}},
		8: {{DirRight, 6}, {DirBottom, 8}},
	},
	RoleTop: {
		0: {{DirBack, 2}, {DirLeft, 0}},
		1: {{DirBack, 1}},
		2: {{DirBack, 0}, {DirRight, 2}},
		3: {{DirLeft, 1}},
		5: {{DirRight, 1}},
		6: {{DirFront, 0}, {DirLeft, 2}},
		7: {{DirFront, 1}},
		8: {{DirFront, 2}, {DirRight, 0}},
	},
	RoleBottom: {
		0: {{DirFront, 6}, {DirLeft, 8}},
		1: {{DirFront, 7}},
		2: {{DirFront, 8}, {DirRight, 6}},
		3: {{DirLeft, 7}},
		5: {{DirRight, 7}},
		6: {{DirBack, 8}, {DirLeft, 6}},
		7: {{DirBack, 7}},
		8: {{DirBack, 6}, {DirRight, 8}},
	},
}

// build assembles the face graph and glues the pieces. It runs once per cube.
func (c *Cube) build() error {
	for col := Color(0); col < numColors; col++ {
		c.faces[faceOf(col)] = newFace(col, defaultRoles[col])
	}

	pairs := [][2]Color{{Blue, Green}, {Red, Orange}, {White, Yellow}}
	for _, p := range pairs {
		if err := c.setOpposite(faceOf(p[0]), faceOf(p[1])); err != nil {
			return err
		}
	}

	byRole := make(map[Role]FaceID, numFaces)
	for id := range c.faces {
		byRole[c.faces[id].role] = FaceID(id)
	}
	for id := range c.faces {
		f := &c.faces[id]
		for _, d := range directionsFor(f.role) {
			f.links[d] = byRole[neighbourRoles[f.role][d]]
		}
	}

	for id := range c.faces {
		f := &c.faces[id]
		for slot := range f.grid {
			pid := PieceID(id*9 + slot)
			c.pieces[pid] = piece{
				color:       f.color,
				kind:        slotKind(slot),
				face:        FaceID(id),
				pos:         slot,
				complements: [2]PieceID{noPiece, noPiece},
			}
			f.grid[slot] = pid
		}
	}
	c.front = byRole[RoleFront]

	if err := c.glue(); err != nil {
		return err
	}
	return c.checkComplements()
}

// glue links every non-centre piece to the pieces that touch it.
func (c *Cube) glue() error {
	for id := range c.faces {
		f := &c.faces[id]
		for slot, touches := range complementTable[f.role] {
			p := f.grid[slot]
			for _, t := range touches {
				q := c.faces[f.links[t.dir]].grid[t.slot]
				if err := c.pieces[p].addComplement(q); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// checkComplements asserts that every edge has one complement, every corner
// two, and that each link is returned.
func (c *Cube) checkComplements() error {
	for id := range c.pieces {
		p := &c.pieces[id]
		for i := 0; i < p.kind.complementCount(); i++ {
			q := p.complements[i]
			if q == noPiece {
				return fmt.Errorf("%w: %s %s piece is missing a complement", ErrIntegrity, p.color.Name(), p.kind)
			}
			if !c.pieces[q].hasComplement(PieceID(id)) {
				return fmt.Errorf("%w: complement link of %s %s piece is one-sided", ErrIntegrity, p.color.Name(), p.kind)
			}
		}
	}
	return nil
}
