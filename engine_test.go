package rubiks

import (
	"errors"
	"testing"
)

func TestOppositeIsWriteOnce(t *testing.T) {
	c := New()
	err := c.setOpposite(faceOf(Blue), faceOf(Red))
	if !errors.Is(err, ErrWriteOnce) {
		t.Errorf("setOpposite on a built cube = %v, want ErrWriteOnce", err)
	}
	if c.faces[faceOf(Blue)].opposite != faceOf(Green) {
		t.Error("a rejected opposite should leave the pairing alone")
	}
}

func TestComplementsAreWriteOnce(t *testing.T) {
	c := New()
	edge := c.faces[faceOf(Blue)].grid[1]
	corner := c.faces[faceOf(Blue)].grid[0]
	other := c.faces[faceOf(Green)].grid[4]

	if err := c.pieces[edge].addComplement(other); !errors.Is(err, ErrWriteOnce) {
		t.Errorf("second edge complement = %v, want ErrWriteOnce", err)
	}
	if err := c.pieces[corner].addComplement(other); !errors.Is(err, ErrWriteOnce) {
		t.Errorf("third corner complement = %v, want ErrWriteOnce", err)
	}
}

func TestComplementWiring(t *testing.T) {
	c := New()
	for id := range c.pieces {
		p := &c.pieces[id]
		seen := map[Color]bool{p.color: true}
		for i := 0; i < p.kind.complementCount(); i++ {
			q := &c.pieces[p.complements[i]]
			if seen[q.color] {
				t.Errorf("%s %s piece has two stickers of colour %s", p.color.Name(), p.kind, q.color.Name())
			}
			seen[q.color] = true
			if q.kind != p.kind {
				t.Errorf("%s piece glued to a %s piece", p.kind, q.kind)
			}
		}
	}

	// Front top-left corner touches left and top.
	corner := &c.pieces[c.faces[faceOf(Blue)].grid[0]]
	for _, want := range []PieceID{c.faces[faceOf(Red)].grid[2], c.faces[faceOf(White)].grid[6]} {
		if !corner.hasComplement(want) {
			t.Errorf("front corner 0 should be glued to piece %d", want)
		}
	}
}

func TestCommitRejectsMalformedDescriptors(t *testing.T) {
	tests := []struct {
		name   string
		mangle func(next *[numFaces]faceState)
	}{
		{"missing piece", func(n *[numFaces]faceState) { n[0].grid[3] = noPiece }},
		{"missing link", func(n *[numFaces]faceState) { n[0].links[DirTop] = noFace }},
		{"missing role", func(n *[numFaces]faceState) { n[2].role = numRoles }},
		{"duplicate role", func(n *[numFaces]faceState) { n[1].role = n[0].role }},
		{"duplicate piece", func(n *[numFaces]faceState) { n[1].grid[0] = n[0].grid[0] }},
		{"moved centre", func(n *[numFaces]faceState) { n[0].grid[4], n[1].grid[4] = n[1].grid[4], n[0].grid[4] }},
	}

	for _, tt := range tests {
		c := New()
		c.Apply(ShiftTopRowLeft)
		before := c.State()

		next := [numFaces]faceState(c.snapshot())
		tt.mangle(&next)
		err := c.commit(&next)
		if !errors.Is(err, ErrMalformedTransfer) {
			t.Errorf("%s: commit = %v, want ErrMalformedTransfer", tt.name, err)
		}
		if c.State() != before {
			t.Errorf("%s: a rejected commit should write nothing", tt.name)
		}
		if err := c.Verify(); err != nil {
			t.Errorf("%s: %v", tt.name, err)
		}
	}
}

func TestReorientReadsOnlyTheSnapshot(t *testing.T) {
	c := New()
	s := c.snapshot()
	next := reorient(&s, &rotateUpRules)

	// The live cube is untouched until commit.
	if c.faces[faceOf(Blue)].role != RoleFront {
		t.Fatal("reorient should not write to the cube")
	}
	if next[faceOf(Blue)].role != RoleTop || next[faceOf(Yellow)].role != RoleFront {
		t.Errorf("rotate up should send blue to top and yellow to front")
	}
	if next[faceOf(Blue)].links[DirFront] != faceOf(Yellow) {
		t.Errorf("new top should link its front to yellow")
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	c := New()
	a, b := c.faces[faceOf(Blue)].grid[1], c.faces[faceOf(Blue)].grid[3]
	c.faces[faceOf(Blue)].grid[1], c.faces[faceOf(Blue)].grid[3] = b, a
	if err := c.Verify(); !errors.Is(err, ErrIntegrity) {
		t.Errorf("Verify() = %v, want ErrIntegrity", err)
	}

	c = New()
	c.faces[faceOf(Red)].links[DirRight] = faceOf(Green)
	if err := c.Verify(); !errors.Is(err, ErrIntegrity) {
		t.Errorf("Verify() with a bad link = %v, want ErrIntegrity", err)
	}
}
