// Package rubiks models a 3x3x3 twisty puzzle as a graph of six faces
// carrying 54 glued stickers.
//
// # Operations
//
// A cube accepts sixteen operations in three families:
//
//   - Rotations turn the whole cube a quarter turn.
//   - Inversions turn the whole cube a half turn.
//   - Shifts turn one outer layer a quarter turn.
//
// Every operation is built from two reorientation primitives and four
// slice primitives. Each primitive copies the six faces, computes all six
// next states from the copy and only then writes them back.
//
// # Quick Start
//
//	cube := rubiks.New()
//	cube.Apply(rubiks.ShiftRightColumnUp)
//	cube.Apply(rubiks.RotateLeftVertical)
//	fmt.Println(cube)
//
//	// Operations that undo the previous one cancel on the stack.
//	cube.Apply(rubiks.RotateRightVertical)
//	fmt.Println(cube.Stack()) // [shift_right_column_up]
//
// # Shuffling
//
//	cube := rubiks.New(rubiks.WithSeed(42))
//	if err := cube.Shuffle(); err != nil {
//	    log.Fatal(err)
//	}
//	cube.Unshuffle() // back to where it started
//
// Use Tracker to share a cube between goroutines and keep its history.
package rubiks
