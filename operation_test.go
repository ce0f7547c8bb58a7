package rubiks

import (
	"errors"
	"testing"
)

func TestOperationFamilies(t *testing.T) {
	counts := map[Family]int{}
	for _, op := range AllOperations() {
		counts[op.Family()]++
		if tableFor(op.Family())[op] == nil {
			t.Errorf("%s has no dispatch entry", op)
		}
	}
	if counts[FamilyRotation] != 6 || counts[FamilyInversion] != 2 || counts[FamilyShift] != 8 {
		t.Errorf("family counts = %v, want 6/2/8", counts)
	}
	if OpInvalid.Family() != 0 || OpInvalid.Valid() {
		t.Error("OpInvalid should belong to no family")
	}
}

func TestOperationInverse(t *testing.T) {
	for _, op := range AllOperations() {
		inv := op.Inverse()
		if inv.Family() != op.Family() {
			t.Errorf("%s and its inverse %s are in different families", op, inv)
		}
		if inv.Inverse() != op {
			t.Errorf("inverse of inverse of %s = %s", op, inv.Inverse())
		}
	}
	if InvertHorizontal.Inverse() != InvertHorizontal {
		t.Error("inversions should be their own inverse")
	}
	if OpInvalid.Inverse() != OpInvalid {
		t.Error("OpInvalid should have no inverse")
	}
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"rotate_up", RotateUp},
		{"  Rotate-Left-Vertical ", RotateLeftVertical},
		{"invert horizontal", InvertHorizontal},
		{"SHIFT_BOTTOM_ROW_RIGHT", ShiftBottomRowRight},
	}
	for _, tt := range tests {
		got, err := ParseOperation(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseOperation(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}

	for _, bad := range []string{"", "rotate", "invalid", "spin_up"} {
		if _, err := ParseOperation(bad); !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("ParseOperation(%q) error = %v, want ErrInvalidOperation", bad, err)
		}
	}
}

func TestParseOperationsStopsAtInvalidToken(t *testing.T) {
	ops, err := ParseOperations("rotate_up shift_top_row_left invert_vertical")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatOperations(ops); got != "rotate_up shift_top_row_left invert_vertical" {
		t.Errorf("FormatOperations = %q", got)
	}

	if _, err := ParseOperations("rotate_up nope"); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("ParseOperations with a bad token = %v, want ErrInvalidOperation", err)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("Orange"); !ok || c != Orange {
		t.Errorf("ParseColor(Orange) = %v, %v", c, ok)
	}
	if c, ok := ParseColor("y"); !ok || c != Yellow {
		t.Errorf("ParseColor(y) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("purple"); ok {
		t.Error("ParseColor(purple) should fail")
	}
}
