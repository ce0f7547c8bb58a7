package rubiks

import "errors"

// Sentinel errors for the rubiks package.
var (
	// Construction and engine defects
	ErrWriteOnce         = errors.New("rubiks: write-once link already assigned")
	ErrMalformedTransfer = errors.New("rubiks: malformed transfer descriptor")
	ErrIntegrity         = errors.New("rubiks: cube integrity violated")

	// Caller input
	ErrInvalidOperation = errors.New("rubiks: invalid operation")

	// Preconditions
	ErrStackNotEmpty = errors.New("rubiks: operation stack is not empty")
	ErrStackEmpty    = errors.New("rubiks: operation stack is empty")
)
