package rubiks

import "fmt"

// FaceID is a stable handle into the cube's face arena. Faces are stored in
// colour order, so FaceID(c) is the face whose centre is c.
type FaceID uint8

const (
	numFaces = numColors

	noFace FaceID = 0xFF
)

func faceOf(c Color) FaceID { return FaceID(c) }

// face is a node of the face graph. Colour and opposite are fixed; role,
// links and grid describe the current orientation.
type face struct {
	color    Color
	opposite FaceID
	faceState
}

func newFace(c Color, r Role) face {
	f := face{color: c, opposite: noFace, faceState: emptyState()}
	f.role = r
	return f
}

// setOpposite pairs two faces. The pairing is write-once on both sides.
func (c *Cube) setOpposite(a, b FaceID) error {
	fa, fb := &c.faces[a], &c.faces[b]
	if fa.opposite != noFace || fb.opposite != noFace {
		return fmt.Errorf("%w: opposite of %s/%s", ErrWriteOnce, fa.color.Name(), fb.color.Name())
	}
	fa.opposite = b
	fb.opposite = a
	return nil
}

// faceState is the mutable part of a face: a snapshot entry or a next-state
// descriptor.
type faceState struct {
	role  Role
	links [numDirections]FaceID
	grid  [9]PieceID
}

// emptyState returns a descriptor with nothing assigned.
func emptyState() faceState {
	s := faceState{role: numRoles}
	for d := range s.links {
		s.links[d] = noFace
	}
	for i := range s.grid {
		s.grid[i] = noPiece
	}
	return s
}

// validate checks that the descriptor is complete for its role.
func (s *faceState) validate() error {
	if s.role >= numRoles {
		return fmt.Errorf("%w: no role assigned", ErrMalformedTransfer)
	}
	for _, d := range directionsFor(s.role) {
		if s.links[d] == noFace {
			return fmt.Errorf("%w: %s face missing %s link", ErrMalformedTransfer, s.role, d)
		}
	}
	for i, p := range s.grid {
		if p == noPiece {
			return fmt.Errorf("%w: %s face missing piece at %d", ErrMalformedTransfer, s.role, i)
		}
	}
	return nil
}

// snapshot is a frozen copy of all six faces. Copies share piece handles.
type snapshot [numFaces]faceState

// withRole returns the face holding role r in the snapshot.
func (s *snapshot) withRole(r Role) FaceID {
	for id := range s {
		if s[id].role == r {
			return FaceID(id)
		}
	}
	return noFace
}
