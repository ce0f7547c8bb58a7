package rubiks

import "fmt"

// PieceKind tells how many neighbouring faces a sticker is glued to.
type PieceKind uint8

const (
	KindCenter PieceKind = iota // no complements
	KindEdge                    // one complement
	KindCorner                  // two complements
)

func (k PieceKind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// complementCount is the number of glued neighbours a kind has.
func (k PieceKind) complementCount() int {
	switch k {
	case KindEdge:
		return 1
	case KindCorner:
		return 2
	default:
		return 0
	}
}

// slotKind returns the kind of piece a grid slot holds.
//
//	C E C
//	E X E
//	C E C
func slotKind(slot int) PieceKind {
	switch slot {
	case 4:
		return KindCenter
	case 1, 3, 5, 7:
		return KindEdge
	default:
		return KindCorner
	}
}

// PieceID is a stable handle into the cube's piece arena.
type PieceID uint16

const (
	numPieces = numColors * 9

	noPiece PieceID = 0xFFFF
)

// piece is one sticker. Colour, kind and complements never change once the
// cube is built; face and position follow the sticker around.
type piece struct {
	color       Color
	kind        PieceKind
	face        FaceID
	pos         int
	complements [2]PieceID
}

// addComplement records q as glued to p. Edges accept one complement and
// corners two; anything more is a write-once violation.
func (p *piece) addComplement(q PieceID) error {
	for i := 0; i < p.kind.complementCount(); i++ {
		if p.complements[i] == noPiece {
			p.complements[i] = q
			return nil
		}
		if p.complements[i] == q {
			break
		}
	}
	return fmt.Errorf("%w: %s %s piece already has its complements", ErrWriteOnce, p.color.Name(), p.kind)
}

// hasComplement reports whether q is glued to p.
func (p *piece) hasComplement(q PieceID) bool {
	for i := 0; i < p.kind.complementCount(); i++ {
		if p.complements[i] == q {
			return true
		}
	}
	return false
}
