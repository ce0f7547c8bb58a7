package rubiks

// Grid permutations. A face's new grid is next[j] = old[perm[j]].
var (
	permIdentity = [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	permHalfTurn = [9]int{8, 7, 6, 5, 4, 3, 2, 1, 0}
	permCCW      = [9]int{2, 5, 8, 1, 4, 7, 0, 3, 6}
	permCW       = [9]int{6, 3, 0, 7, 4, 1, 8, 5, 2}
)

// reorientRule says what happens to a face in one role during a whole-cube
// quarter turn. links[d] is the old link copied into new link d.
type reorientRule struct {
	to    Role
	perm  [9]int
	links [numDirections]Direction
}

// remap builds a link map from (new, old) pairs.
func remap(pairs ...Direction) [numDirections]Direction {
	var m [numDirections]Direction
	for d := range m {
		m[d] = noDirection
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}

var sideIdentity = remap(DirLeft, DirLeft, DirRight, DirRight, DirTop, DirTop, DirBottom, DirBottom)

// rotateUpRules turns the cube so the front face becomes the top.
var rotateUpRules = [numRoles]reorientRule{
	RoleFront: {
		to:    RoleTop,
		perm:  permIdentity,
		links: remap(DirFront, DirBottom, DirBack, DirTop, DirLeft, DirLeft, DirRight, DirRight),
	},
	RoleBack: {
		to:    RoleBottom,
		perm:  permHalfTurn,
		links: remap(DirFront, DirBottom, DirBack, DirTop, DirLeft, DirRight, DirRight, DirLeft),
	},
	RoleLeft: {
		to:    RoleLeft,
		perm:  permCCW,
		links: remap(DirLeft, DirTop, DirRight, DirBottom, DirTop, DirRight, DirBottom, DirLeft),
	},
	RoleRight: {
		to:    RoleRight,
		perm:  permCW,
		links: remap(DirLeft, DirBottom, DirRight, DirTop, DirTop, DirLeft, DirBottom, DirRight),
	},
	RoleTop: {
		to:    RoleBack,
		perm:  permHalfTurn,
		links: remap(DirLeft, DirRight, DirRight, DirLeft, DirTop, DirFront, DirBottom, DirBack),
	},
	RoleBottom: {
		to:    RoleFront,
		perm:  permIdentity,
		links: remap(DirLeft, DirLeft, DirRight, DirRight, DirTop, DirFront, DirBottom, DirBack),
	},
}

// rotateLeftVerticalRules turns the cube about the vertical axis so the
// right face becomes the front.
var rotateLeftVerticalRules = [numRoles]reorientRule{
	RoleFront: {to: RoleLeft, perm: permIdentity, links: sideIdentity},
	RoleBack:  {to: RoleRight, perm: permIdentity, links: sideIdentity},
	RoleLeft:  {to: RoleBack, perm: permIdentity, links: sideIdentity},
	RoleRight: {to: RoleFront, perm: permIdentity, links: sideIdentity},
	RoleTop: {
		to:    RoleTop,
		perm:  permCW,
		links: remap(DirFront, DirRight, DirBack, DirLeft, DirLeft, DirFront, DirRight, DirBack),
	},
	RoleBottom: {
		to:    RoleBottom,
		perm:  permCCW,
		links: remap(DirFront, DirRight, DirBack, DirLeft, DirLeft, DirFront, DirRight, DirBack),
	},
}

// reorient computes the next state of every face from a frozen snapshot.
func reorient(s *snapshot, rules *[numRoles]reorientRule) [numFaces]faceState {
	var next [numFaces]faceState
	for id := range s {
		cur := &s[id]
		rule := &rules[cur.role]

		ns := emptyState()
		ns.role = rule.to
		for d, from := range rule.links {
			if from != noDirection {
				ns.links[d] = cur.links[from]
			}
		}
		for j, k := range rule.perm {
			ns.grid[j] = cur.grid[k]
		}
		next[id] = ns
	}
	return next
}

func (c *Cube) rotateUp() error {
	s := c.snapshot()
	next := reorient(&s, &rotateUpRules)
	return c.commit(&next)
}

func (c *Cube) rotateLeftVertical() error {
	s := c.snapshot()
	next := reorient(&s, &rotateLeftVerticalRules)
	return c.commit(&next)
}
