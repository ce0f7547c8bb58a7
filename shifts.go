package rubiks

// Strips of three slots along a face edge.
var (
	colLeft  = [3]int{0, 3, 6}
	colRight = [3]int{2, 5, 8}
	rowTop   = [3]int{0, 1, 2}
	rowBot   = [3]int{6, 7, 8}
)

// strip copies three pieces from one face edge to another. When reversed,
// the source strip is read back to front.
type strip struct {
	dst      Role
	dstSlots [3]int
	src      Role
	srcSlots [3]int
	reversed bool
}

// shiftRule is one single-layer quarter turn: four strip transfers around
// the ring of faces plus a spin of the side face the layer sits against.
type shiftRule struct {
	strips   [4]strip
	spin     Role
	spinPerm [9]int
}

var leftColumnUpRule = shiftRule{
	strips: [4]strip{
		{dst: RoleFront, dstSlots: colLeft, src: RoleBottom, srcSlots: colLeft},
		{dst: RoleTop, dstSlots: colLeft, src: RoleFront, srcSlots: colLeft},
		{dst: RoleBack, dstSlots: colRight, src: RoleTop, srcSlots: colLeft, reversed: true},
		{dst: RoleBottom, dstSlots: colLeft, src: RoleBack, srcSlots: colRight, reversed: true},
	},
	spin:     RoleLeft,
	spinPerm: permCCW,
}

var rightColumnUpRule = shiftRule{
	strips: [4]strip{
		{dst: RoleFront, dstSlots: colRight, src: RoleBottom, srcSlots: colRight},
		{dst: RoleTop, dstSlots: colRight, src: RoleFront, srcSlots: colRight},
		{dst: RoleBack, dstSlots: colLeft, src: RoleTop, srcSlots: colRight, reversed: true},
		{dst: RoleBottom, dstSlots: colRight, src: RoleBack, srcSlots: colLeft, reversed: true},
	},
	spin:     RoleRight,
	spinPerm: permCW,
}

var topRowLeftRule = shiftRule{
	strips: [4]strip{
		{dst: RoleFront, dstSlots: rowTop, src: RoleRight, srcSlots: rowTop},
		{dst: RoleLeft, dstSlots: rowTop, src: RoleFront, srcSlots: rowTop},
		{dst: RoleBack, dstSlots: rowTop, src: RoleLeft, srcSlots: rowTop},
		{dst: RoleRight, dstSlots: rowTop, src: RoleBack, srcSlots: rowTop},
	},
	spin:     RoleTop,
	spinPerm: permCW,
}

var bottomRowLeftRule = shiftRule{
	strips: [4]strip{
		{dst: RoleFront, dstSlots: rowBot, src: RoleRight, srcSlots: rowBot},
		{dst: RoleLeft, dstSlots: rowBot, src: RoleFront, srcSlots: rowBot},
		{dst: RoleBack, dstSlots: rowBot, src: RoleLeft, srcSlots: rowBot},
		{dst: RoleRight, dstSlots: rowBot, src: RoleBack, srcSlots: rowBot},
	},
	spin:     RoleBottom,
	spinPerm: permCCW,
}

// shift computes the next state of every face for a slice turn. Roles and
// links are unchanged; only grids move.
func shift(s *snapshot, rule *shiftRule) [numFaces]faceState {
	next := [numFaces]faceState(*s)

	for _, st := range rule.strips {
		dst := &next[s.withRole(st.dst)]
		src := &s[s.withRole(st.src)]
		for i, slot := range st.dstSlots {
			k := i
			if st.reversed {
				k = len(st.srcSlots) - 1 - i
			}
			dst.grid[slot] = src.grid[st.srcSlots[k]]
		}
	}

	id := s.withRole(rule.spin)
	for j, k := range rule.spinPerm {
		next[id].grid[j] = s[id].grid[k]
	}
	return next
}

func (c *Cube) applyShift(rule *shiftRule) error {
	s := c.snapshot()
	next := shift(&s, rule)
	return c.commit(&next)
}

func (c *Cube) leftColumnUp() error { return c.applyShift(&leftColumnUpRule) }

func (c *Cube) rightColumnUp() error { return c.applyShift(&rightColumnUpRule) }

func (c *Cube) topRowLeft() error { return c.applyShift(&topRowLeftRule) }

func (c *Cube) bottomRowLeft() error { return c.applyShift(&bottomRowLeftRule) }
