package rubiks

import "strings"

// FaceView is a read-only picture of one face as the viewer sees it.
type FaceView struct {
	Color Color
	Role  Role
	Grid  [9]Color
}

// Uniform reports whether every sticker on the face matches its centre.
func (v FaceView) Uniform() bool {
	for _, col := range v.Grid {
		if col != v.Color {
			return false
		}
	}
	return true
}

func (c *Cube) view(id FaceID) FaceView {
	f := &c.faces[id]
	v := FaceView{Color: f.color, Role: f.role}
	for i, p := range f.grid {
		v.Grid[i] = c.pieces[p].color
	}
	return v
}

// Face returns the face currently holding role r.
func (c *Cube) Face(r Role) FaceView {
	for id := range c.faces {
		if c.faces[id].role == r {
			return c.view(FaceID(id))
		}
	}
	return FaceView{}
}

// Front returns the colour of the face in front.
func (c *Cube) Front() Color {
	return c.faces[c.front].color
}

// Faces returns the six faces ordered front, left, right, top, back,
// bottom, found by walking the links of the front face.
func (c *Cube) Faces() []FaceView {
	f := &c.faces[c.front]
	ids := []FaceID{
		c.front,
		f.links[DirLeft],
		f.links[DirRight],
		f.links[DirTop],
		f.opposite,
		f.links[DirBottom],
	}

	views := make([]FaceView, len(ids))
	for i, id := range ids {
		views[i] = c.view(id)
	}
	return views
}

// State is a comparable picture of the whole cube. Arrays are indexed by
// face colour.
type State struct {
	Front    Color
	Roles    [numColors]Role
	Stickers [numColors][9]Color
}

// State returns the current state.
func (c *Cube) State() State {
	s := State{Front: c.Front()}
	for id := range c.faces {
		v := c.view(FaceID(id))
		s.Roles[v.Color] = v.Role
		s.Stickers[v.Color] = v.Grid
	}
	return s
}

// IsUniform reports whether every face shows a single colour, whatever
// the orientation.
func (c *Cube) IsUniform() bool {
	for id := range c.faces {
		if !c.view(FaceID(id)).Uniform() {
			return false
		}
	}
	return true
}

// String returns the cube as an unfolded net:
//
//	      T
//	    L F R B
//	      D
func (c *Cube) String() string {
	var sb strings.Builder
	pad := strings.Repeat(" ", 7)

	writeCap := func(v FaceView) {
		for r := 0; r < 3; r++ {
			sb.WriteString(pad)
			writeRow(&sb, v.Grid, r)
			sb.WriteByte('\n')
		}
	}

	writeCap(c.Face(RoleTop))
	sides := []FaceView{c.Face(RoleLeft), c.Face(RoleFront), c.Face(RoleRight), c.Face(RoleBack)}
	for r := 0; r < 3; r++ {
		for i, v := range sides {
			if i > 0 {
				sb.WriteString("  ")
			}
			writeRow(&sb, v.Grid, r)
		}
		sb.WriteByte('\n')
	}
	writeCap(c.Face(RoleBottom))

	return sb.String()
}

func writeRow(sb *strings.Builder, grid [9]Color, row int) {
	for col := 0; col < 3; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(grid[row*3+col].String())
	}
}
