package rubiks

// Role is the position a face currently occupies relative to the viewer.
type Role uint8

const (
	RoleFront Role = iota
	RoleBack
	RoleLeft
	RoleRight
	RoleTop
	RoleBottom
)

const numRoles = 6

func (r Role) String() string {
	switch r {
	case RoleFront:
		return "front"
	case RoleBack:
		return "back"
	case RoleLeft:
		return "left"
	case RoleRight:
		return "right"
	case RoleTop:
		return "top"
	case RoleBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// IsSide reports whether the role is one of the four faces seen upright
// around the vertical axis.
func (r Role) IsSide() bool {
	return r <= RoleRight
}

// Opposite returns the role on the far side of the cube.
func (r Role) Opposite() Role {
	switch r {
	case RoleFront:
		return RoleBack
	case RoleBack:
		return RoleFront
	case RoleLeft:
		return RoleRight
	case RoleRight:
		return RoleLeft
	case RoleTop:
		return RoleBottom
	default:
		return RoleTop
	}
}

// Direction names a neighbour link of a face. Side faces use left, right,
// top and bottom; top and bottom faces use left, right, front and back.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirTop
	DirBottom
	DirFront
	DirBack

	noDirection Direction = 0xFF
)

const numDirections = 6

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirFront:
		return "front"
	case DirBack:
		return "back"
	default:
		return "none"
	}
}

// sideDirections and capDirections are the links used by each kind of role.
var (
	sideDirections = [4]Direction{DirLeft, DirRight, DirTop, DirBottom}
	capDirections  = [4]Direction{DirFront, DirBack, DirLeft, DirRight}
)

// directionsFor returns the links a face in role r must carry.
func directionsFor(r Role) [4]Direction {
	if r.IsSide() {
		return sideDirections
	}
	return capDirections
}

// neighbourRoles gives, for each role and link, the role of the face that
// link must point to. Unused links are absent.
var neighbourRoles = [numRoles]map[Direction]Role{
	RoleFront:  {DirLeft: RoleLeft, DirRight: RoleRight, DirTop: RoleTop, DirBottom: RoleBottom},
	RoleBack:   {DirLeft: RoleRight, DirRight: RoleLeft, DirTop: RoleTop, DirBottom: RoleBottom},
	RoleLeft:   {DirLeft: RoleBack, DirRight: RoleFront, DirTop: RoleTop, DirBottom: RoleBottom},
	RoleRight:  {DirLeft: RoleFront, DirRight: RoleBack, DirTop: RoleTop, DirBottom: RoleBottom},
	RoleTop:    {DirFront: RoleFront, DirBack: RoleBack, DirLeft: RoleLeft, DirRight: RoleRight},
	RoleBottom: {DirFront: RoleFront, DirBack: RoleBack, DirLeft: RoleLeft, DirRight: RoleRight},
}
