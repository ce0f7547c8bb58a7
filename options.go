package rubiks

import "math/rand/v2"

// Option configures a Cube.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	stepHook func(Step)
}

func defaultConfig() *config {
	return &config{}
}

// WithSeed makes shuffles reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source used by Shuffle.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithStepHook registers a function called after every executed step,
// including the inverse steps of Undo and Unshuffle.
// The hook must not call back into the cube.
func WithStepHook(fn func(Step)) Option {
	return func(c *config) {
		c.stepHook = fn
	}
}
