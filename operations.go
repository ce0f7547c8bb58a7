package rubiks

// Operations grouped by family, in menu order.
//
// Example:
//
//	for _, op := range rubiks.Shifts() {
//	    fmt.Println(op.DisplayName())
//	}
var (
	rotations = []Operation{
		RotateUp, RotateDown,
		RotateLeftVertical, RotateRightVertical,
		RotateLeftHorizontal, RotateRightHorizontal,
	}

	inversions = []Operation{InvertHorizontal, InvertVertical}

	shifts = []Operation{
		ShiftLeftColumnUp, ShiftLeftColumnDown,
		ShiftRightColumnUp, ShiftRightColumnDown,
		ShiftTopRowLeft, ShiftTopRowRight,
		ShiftBottomRowLeft, ShiftBottomRowRight,
	}
)

// Rotations returns the six whole-cube rotations.
func Rotations() []Operation { return append([]Operation(nil), rotations...) }

// Inversions returns the two whole-cube inversions.
func Inversions() []Operation { return append([]Operation(nil), inversions...) }

// Shifts returns the eight slice turns.
func Shifts() []Operation { return append([]Operation(nil), shifts...) }

// AllOperations returns every operation, rotations first.
func AllOperations() []Operation {
	all := make([]Operation, 0, int(numOperations)-1)
	all = append(all, rotations...)
	all = append(all, inversions...)
	return append(all, shifts...)
}
