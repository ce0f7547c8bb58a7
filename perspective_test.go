package rubiks

import "testing"

// orientations returns one cube per reachable whole-cube orientation.
func orientations() []*Cube {
	start := New()
	seen := map[[numColors]Role]bool{start.State().Roles: true}
	queue := []*Cube{start}
	var all []*Cube

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		all = append(all, cur)
		for _, op := range Rotations() {
			next := cur.Clone()
			next.Apply(op)
			key := next.State().Roles
			if !seen[key] {
				seen[key] = true
				queue = append(queue, next)
			}
		}
	}
	return all
}

func TestResetPerspectiveFromEveryOrientation(t *testing.T) {
	all := orientations()
	if len(all) != 24 {
		t.Fatalf("found %d orientations, want 24", len(all))
	}

	for i, c := range all {
		n, err := c.ResetPerspective()
		if err != nil {
			t.Fatalf("orientation %d: %v", i, err)
		}
		if n > 5 {
			t.Errorf("orientation %d took %d steps", i, n)
		}
		if !c.InReferenceOrientation() {
			t.Errorf("orientation %d did not reach the reference orientation", i)
		}
		if n, _ := c.ResetPerspective(); n != 0 {
			t.Errorf("second reset took %d steps, want 0", n)
		}
	}
}

func TestResetPerspectiveBlueBackWhiteOnSide(t *testing.T) {
	c := New()
	c.ApplyAll(InvertVertical, RotateLeftHorizontal)
	if c.Face(RoleBack).Color != Blue || c.Face(RoleTop).Color == White {
		t.Fatalf("setup: back=%s top=%s", c.Face(RoleBack).Color.Name(), c.Face(RoleTop).Color.Name())
	}

	if _, err := c.ResetPerspective(); err != nil {
		t.Fatal(err)
	}
	if !c.InReferenceOrientation() {
		t.Error("reset should reach the reference orientation")
	}
}

func TestResetPerspectiveIsUndoable(t *testing.T) {
	c := New(WithSeed(5))
	want := c.State()
	c.ShuffleN(30)

	if _, err := c.ResetPerspective(); err != nil {
		t.Fatal(err)
	}
	if err := c.Verify(); err != nil {
		t.Fatal(err)
	}

	// The corrective rotations went on the stack, so unshuffling undoes
	// them along with the shuffle.
	if !c.IsSolved() {
		if err := c.Unshuffle(); err != nil {
			t.Fatal(err)
		}
	}
	if c.State() != want {
		t.Error("unshuffle after reset should restore the starting state")
		t.Log(c.String())
	}
}
