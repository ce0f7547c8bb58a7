package analysis

import (
	"github.com/SeamusWaldron/rubiks_cube"
	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

// Token encoding for n-gram detection. Operations already fit in a byte;
// unknown operation keys map to token 0.

func opToken(op rubiks.Operation) uint8 {
	return uint8(op)
}

func opFromToken(token uint8) rubiks.Operation {
	return rubiks.Operation(token)
}

// forwardOps returns the non-undo steps of a session with their record
// indices. Undo steps are the engine retracing its own stack and are left
// out of pattern analysis.
func forwardOps(records []storage.StepRecord) ([]rubiks.Operation, []int) {
	ops := make([]rubiks.Operation, 0, len(records))
	idx := make([]int, 0, len(records))
	for i, r := range records {
		if r.Undo {
			continue
		}
		op, err := rubiks.ParseOperation(r.Operation)
		if err != nil {
			continue
		}
		ops = append(ops, op)
		idx = append(idx, i)
	}
	return ops, idx
}
