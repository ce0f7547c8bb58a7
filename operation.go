package rubiks

import (
	"fmt"
	"strings"
)

// Family groups operations by what they do to the cube.
type Family uint8

const (
	FamilyRotation  Family = iota + 1 // Whole-cube quarter turn
	FamilyInversion                   // Whole-cube half turn
	FamilyShift                       // Single outer layer quarter turn
)

func (f Family) String() string {
	switch f {
	case FamilyRotation:
		return "rotation"
	case FamilyInversion:
		return "inversion"
	case FamilyShift:
		return "shift"
	default:
		return "unknown"
	}
}

// Operation is one of the sixteen actions a cube accepts.
type Operation uint8

const (
	OpInvalid Operation = iota

	RotateUp
	RotateDown
	RotateLeftVertical
	RotateRightVertical
	RotateLeftHorizontal
	RotateRightHorizontal

	InvertHorizontal
	InvertVertical

	ShiftLeftColumnUp
	ShiftLeftColumnDown
	ShiftRightColumnUp
	ShiftRightColumnDown
	ShiftTopRowLeft
	ShiftTopRowRight
	ShiftBottomRowLeft
	ShiftBottomRowRight

	numOperations
)

// Family returns the family the operation belongs to.
func (o Operation) Family() Family {
	switch {
	case o >= RotateUp && o <= RotateRightHorizontal:
		return FamilyRotation
	case o == InvertHorizontal || o == InvertVertical:
		return FamilyInversion
	case o >= ShiftLeftColumnUp && o <= ShiftBottomRowRight:
		return FamilyShift
	default:
		return 0
	}
}

// Valid reports whether o is one of the sixteen operations.
func (o Operation) Valid() bool {
	return o > OpInvalid && o < numOperations
}

// Inverse returns the operation that undoes o.
// Inversions are their own inverse; OpInvalid has none.
func (o Operation) Inverse() Operation {
	switch o {
	case RotateUp:
		return RotateDown
	case RotateDown:
		return RotateUp
	case RotateLeftVertical:
		return RotateRightVertical
	case RotateRightVertical:
		return RotateLeftVertical
	case RotateLeftHorizontal:
		return RotateRightHorizontal
	case RotateRightHorizontal:
		return RotateLeftHorizontal
	case InvertHorizontal, InvertVertical:
		return o
	case ShiftLeftColumnUp:
		return ShiftLeftColumnDown
	case ShiftLeftColumnDown:
		return ShiftLeftColumnUp
	case ShiftRightColumnUp:
		return ShiftRightColumnDown
	case ShiftRightColumnDown:
		return ShiftRightColumnUp
	case ShiftTopRowLeft:
		return ShiftTopRowRight
	case ShiftTopRowRight:
		return ShiftTopRowLeft
	case ShiftBottomRowLeft:
		return ShiftBottomRowRight
	case ShiftBottomRowRight:
		return ShiftBottomRowLeft
	default:
		return OpInvalid
	}
}

// String returns the operation key, e.g. "rotate_up".
func (o Operation) String() string {
	switch o {
	case RotateUp:
		return "rotate_up"
	case RotateDown:
		return "rotate_down"
	case RotateLeftVertical:
		return "rotate_left_vertical"
	case RotateRightVertical:
		return "rotate_right_vertical"
	case RotateLeftHorizontal:
		return "rotate_left_horizontal"
	case RotateRightHorizontal:
		return "rotate_right_horizontal"
	case InvertHorizontal:
		return "invert_horizontal"
	case InvertVertical:
		return "invert_vertical"
	case ShiftLeftColumnUp:
		return "shift_left_column_up"
	case ShiftLeftColumnDown:
		return "shift_left_column_down"
	case ShiftRightColumnUp:
		return "shift_right_column_up"
	case ShiftRightColumnDown:
		return "shift_right_column_down"
	case ShiftTopRowLeft:
		return "shift_top_row_left"
	case ShiftTopRowRight:
		return "shift_top_row_right"
	case ShiftBottomRowLeft:
		return "shift_bottom_row_left"
	case ShiftBottomRowRight:
		return "shift_bottom_row_right"
	default:
		return "invalid"
	}
}

// DisplayName returns a human-readable name for menus and reports.
func (o Operation) DisplayName() string {
	switch o {
	case RotateUp:
		return "Rotate Up"
	case RotateDown:
		return "Rotate Down"
	case RotateLeftVertical:
		return "Rotate Left (vertical axis)"
	case RotateRightVertical:
		return "Rotate Right (vertical axis)"
	case RotateLeftHorizontal:
		return "Rotate Left (horizontal axis)"
	case RotateRightHorizontal:
		return "Rotate Right (horizontal axis)"
	case InvertHorizontal:
		return "Invert Horizontally"
	case InvertVertical:
		return "Invert Vertically"
	case ShiftLeftColumnUp:
		return "Shift Left Column Up"
	case ShiftLeftColumnDown:
		return "Shift Left Column Down"
	case ShiftRightColumnUp:
		return "Shift Right Column Up"
	case ShiftRightColumnDown:
		return "Shift Right Column Down"
	case ShiftTopRowLeft:
		return "Shift Top Row Left"
	case ShiftTopRowRight:
		return "Shift Top Row Right"
	case ShiftBottomRowLeft:
		return "Shift Bottom Row Left"
	case ShiftBottomRowRight:
		return "Shift Bottom Row Right"
	default:
		return "Invalid"
	}
}

// ParseOperation parses an operation key.
// Case is ignored and '-' or ' ' may stand in for '_'.
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for o := RotateUp; o < numOperations; o++ {
		if o.String() == key {
			return o, nil
		}
	}
	return OpInvalid, fmt.Errorf("%w: %q", ErrInvalidOperation, s)
}

// ParseOperations parses a whitespace-separated list of operation keys.
// Parsing stops at the first invalid token.
func ParseOperations(s string) ([]Operation, error) {
	parts := strings.Fields(s)
	ops := make([]Operation, 0, len(parts))

	for _, part := range parts {
		op, err := ParseOperation(part)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, nil
}

// FormatOperations joins operation keys with single spaces.
func FormatOperations(ops []Operation) string {
	if len(ops) == 0 {
		return ""
	}

	parts := make([]string, len(ops))
	for i, o := range ops {
		parts[i] = o.String()
	}

	return strings.Join(parts, " ")
}
