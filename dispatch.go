package rubiks

// Composite operations, each a fixed repetition or sequence of the two
// reorientation primitives and four slice primitives.
var (
	rotateDown            = times(3, (*Cube).rotateUp)
	rotateRightVertical   = times(3, (*Cube).rotateLeftVertical)
	rotateLeftHorizontal  = chain(rotateRightVertical, rotateDown, (*Cube).rotateLeftVertical)
	rotateRightHorizontal = chain((*Cube).rotateLeftVertical, rotateDown, rotateRightVertical)
)

// Dispatch tables, one per family.
var (
	rotationTable = map[Operation]func(*Cube) error{
		RotateUp:              (*Cube).rotateUp,
		RotateDown:            rotateDown,
		RotateLeftVertical:    (*Cube).rotateLeftVertical,
		RotateRightVertical:   rotateRightVertical,
		RotateLeftHorizontal:  rotateLeftHorizontal,
		RotateRightHorizontal: rotateRightHorizontal,
	}

	inversionTable = map[Operation]func(*Cube) error{
		InvertHorizontal: times(2, rotateLeftHorizontal),
		InvertVertical:   times(2, (*Cube).rotateLeftVertical),
	}

	shiftTable = map[Operation]func(*Cube) error{
		ShiftLeftColumnUp:    (*Cube).leftColumnUp,
		ShiftLeftColumnDown:  times(3, (*Cube).leftColumnUp),
		ShiftRightColumnUp:   (*Cube).rightColumnUp,
		ShiftRightColumnDown: times(3, (*Cube).rightColumnUp),
		ShiftTopRowLeft:      (*Cube).topRowLeft,
		ShiftTopRowRight:     times(3, (*Cube).topRowLeft),
		ShiftBottomRowLeft:   (*Cube).bottomRowLeft,
		ShiftBottomRowRight:  times(3, (*Cube).bottomRowLeft),
	}
)

// tableFor returns the dispatch table of a family.
func tableFor(f Family) map[Operation]func(*Cube) error {
	switch f {
	case FamilyRotation:
		return rotationTable
	case FamilyInversion:
		return inversionTable
	case FamilyShift:
		return shiftTable
	default:
		return nil
	}
}
