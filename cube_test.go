package rubiks

import (
	"errors"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !c.IsUniform() {
		t.Error("New cube should show one colour per face")
		t.Log(c.String())
	}
	if !c.InReferenceOrientation() {
		t.Error("New cube should be in the reference orientation")
	}
	if err := c.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestDefaultArrangement(t *testing.T) {
	c := New()
	want := []struct {
		color Color
		role  Role
	}{
		{Blue, RoleFront},
		{Red, RoleLeft},
		{Orange, RoleRight},
		{White, RoleTop},
		{Green, RoleBack},
		{Yellow, RoleBottom},
	}

	faces := c.Faces()
	if len(faces) != len(want) {
		t.Fatalf("Faces() returned %d faces, want %d", len(faces), len(want))
	}
	for i, w := range want {
		if faces[i].Color != w.color || faces[i].Role != w.role {
			t.Errorf("face %d = %s/%s, want %s/%s", i, faces[i].Color.Name(), faces[i].Role, w.color.Name(), w.role)
		}
	}
}

func TestApplyThenInverseRestoresState(t *testing.T) {
	for _, op := range AllOperations() {
		c := New()
		before := c.State()
		if err := c.Apply(op); err != nil {
			t.Fatalf("Apply(%s) = %v", op, err)
		}
		if err := c.Apply(op.Inverse()); err != nil {
			t.Fatalf("Apply(%s) = %v", op.Inverse(), err)
		}
		if c.State() != before {
			t.Errorf("%s then %s should restore the cube", op, op.Inverse())
			t.Log(c.String())
		}
		if !c.IsSolved() {
			t.Errorf("%s then %s should leave an empty stack, got %v", op, op.Inverse(), c.Stack())
		}
	}
}

func TestQuarterTurnsCloseAfterFour(t *testing.T) {
	ops := append(Rotations(), Shifts()...)
	for _, op := range ops {
		c := New()
		before := c.State()
		for i := 0; i < 4; i++ {
			if err := c.Apply(op); err != nil {
				t.Fatalf("Apply(%s) = %v", op, err)
			}
		}
		if c.State() != before {
			t.Errorf("%s x 4 should return to the start", op)
			t.Log(c.String())
		}
		if len(c.Stack()) != 4 {
			t.Errorf("%s x 4 should leave 4 entries on the stack, got %d", op, len(c.Stack()))
		}
	}
}

func TestInversionsCloseAfterTwo(t *testing.T) {
	for _, op := range Inversions() {
		c := New()
		before := c.State()
		c.Apply(op)
		if c.State() == before {
			t.Errorf("%s should change the orientation", op)
		}
		c.Apply(op)
		if c.State() != before {
			t.Errorf("%s x 2 should return to the start", op)
		}
		if !c.IsSolved() {
			t.Errorf("%s x 2 should cancel on the stack", op)
		}
	}
}

func TestStackCancellation(t *testing.T) {
	c := New()
	c.Apply(RotateUp)
	c.Apply(RotateUp)
	if got := len(c.Stack()); got != 2 {
		t.Fatalf("stack depth = %d, want 2", got)
	}

	c.Apply(RotateDown)
	stack := c.Stack()
	if len(stack) != 1 || stack[0] != RotateUp {
		t.Errorf("stack = %v, want [rotate_up]", stack)
	}

	c.Apply(ShiftTopRowLeft)
	c.Apply(ShiftBottomRowRight)
	c.Apply(ShiftBottomRowLeft)
	c.Apply(ShiftTopRowRight)
	stack = c.Stack()
	if len(stack) != 1 || stack[0] != RotateUp {
		t.Errorf("stack = %v, want [rotate_up]", stack)
	}
}

func TestFamilyMethodsRejectOtherFamilies(t *testing.T) {
	tests := []struct {
		name string
		call func(*Cube) error
	}{
		{"rotate shift", func(c *Cube) error { return c.Rotate(ShiftTopRowLeft) }},
		{"rotate inversion", func(c *Cube) error { return c.Rotate(InvertVertical) }},
		{"invert rotation", func(c *Cube) error { return c.Invert(RotateUp) }},
		{"shift inversion", func(c *Cube) error { return c.Shift(InvertHorizontal) }},
		{"shift invalid", func(c *Cube) error { return c.Shift(OpInvalid) }},
		{"apply invalid", func(c *Cube) error { return c.Apply(OpInvalid) }},
		{"apply out of range", func(c *Cube) error { return c.Apply(Operation(99)) }},
	}

	for _, tt := range tests {
		c := New()
		before := c.State()
		err := tt.call(c)
		if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("%s: err = %v, want ErrInvalidOperation", tt.name, err)
		}
		if c.State() != before || !c.IsSolved() {
			t.Errorf("%s: a rejected operation should change nothing", tt.name)
		}
	}
}

func TestRotateUpMovesFrontToTop(t *testing.T) {
	c := New()
	if err := c.Rotate(RotateUp); err != nil {
		t.Fatal(err)
	}

	want := map[Role]Color{
		RoleFront:  Yellow,
		RoleTop:    Blue,
		RoleBack:   White,
		RoleBottom: Green,
		RoleLeft:   Red,
		RoleRight:  Orange,
	}
	for r, col := range want {
		if got := c.Face(r).Color; got != col {
			t.Errorf("%s face = %s, want %s", r, got.Name(), col.Name())
		}
	}
	if c.Front() != Yellow {
		t.Errorf("Front() = %s, want yellow", c.Front().Name())
	}
	if err := c.Verify(); err != nil {
		t.Error(err)
	}
}

func TestRotateLeftVerticalMovesRightToFront(t *testing.T) {
	c := New()
	if err := c.Rotate(RotateLeftVertical); err != nil {
		t.Fatal(err)
	}

	want := map[Role]Color{
		RoleFront:  Orange,
		RoleLeft:   Blue,
		RoleRight:  Green,
		RoleBack:   Red,
		RoleTop:    White,
		RoleBottom: Yellow,
	}
	for r, col := range want {
		if got := c.Face(r).Color; got != col {
			t.Errorf("%s face = %s, want %s", r, got.Name(), col.Name())
		}
	}
	if !c.IsUniform() {
		t.Error("a rotation should not mix stickers")
	}
}

func TestShiftRightColumnUp(t *testing.T) {
	c := New()
	if err := c.Shift(ShiftRightColumnUp); err != nil {
		t.Fatal(err)
	}

	checkColumn := func(r Role, col int, want Color) {
		t.Helper()
		grid := c.Face(r).Grid
		for row := 0; row < 3; row++ {
			if got := grid[row*3+col]; got != want {
				t.Errorf("%s[%d] = %s, want %s", r, row*3+col, got.Name(), want.Name())
			}
		}
	}

	checkColumn(RoleFront, 2, Yellow)
	checkColumn(RoleFront, 0, Blue)
	checkColumn(RoleTop, 2, Blue)
	checkColumn(RoleBack, 0, White)
	checkColumn(RoleBottom, 2, Green)
	if !c.Face(RoleRight).Uniform() || !c.Face(RoleLeft).Uniform() {
		t.Error("left and right faces should keep a single colour")
	}
	if c.Front() != Blue {
		t.Errorf("a shift should not change the front, got %s", c.Front().Name())
	}
	if err := c.Verify(); err != nil {
		t.Error(err)
		t.Log(c.String())
	}
}

func TestShiftTopRowLeft(t *testing.T) {
	c := New()
	if err := c.Shift(ShiftTopRowLeft); err != nil {
		t.Fatal(err)
	}

	want := map[Role]Color{
		RoleFront: Orange,
		RoleLeft:  Blue,
		RoleBack:  Red,
		RoleRight: Green,
	}
	for r, col := range want {
		grid := c.Face(r).Grid
		for i := 0; i < 3; i++ {
			if grid[i] != col {
				t.Errorf("%s[%d] = %s, want %s", r, i, grid[i].Name(), col.Name())
			}
		}
		if grid[3] != c.Face(r).Color {
			t.Errorf("%s middle row should not move", r)
		}
	}
	if !c.Face(RoleTop).Uniform() || !c.Face(RoleBottom).Uniform() {
		t.Error("top and bottom faces should keep a single colour")
	}
}

func TestMixedSequenceKeepsIntegrity(t *testing.T) {
	seq := []Operation{
		ShiftLeftColumnUp, RotateUp, ShiftTopRowLeft, RotateLeftHorizontal,
		ShiftRightColumnDown, InvertHorizontal, ShiftBottomRowRight,
		RotateRightVertical, ShiftLeftColumnDown, InvertVertical, ShiftTopRowRight,
	}

	c := New()
	for _, op := range seq {
		if err := c.Apply(op); err != nil {
			t.Fatalf("Apply(%s) = %v", op, err)
		}
		if err := c.Verify(); err != nil {
			t.Fatalf("after %s: %v", op, err)
		}
	}
	if c.IsUniform() {
		t.Error("sequence should scramble the cube")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	c.Apply(ShiftTopRowLeft)
	clone := c.Clone()
	clone.Apply(RotateUp)

	if c.Front() != Blue {
		t.Error("changing the clone should not move the original")
	}
	if len(c.Stack()) != 1 || len(clone.Stack()) != 2 {
		t.Errorf("stacks should be independent: %v, %v", c.Stack(), clone.Stack())
	}
}

func TestStringRendersNet(t *testing.T) {
	c := New()
	s := c.String()
	want := "       W W W\n"
	if len(s) < len(want) || s[:len(want)] != want {
		t.Errorf("net should start with the top face, got:\n%s", s)
	}
	t.Log(s)
}
