// SPDX-License-Identifier: MIT
// Package: geograph/core
//
// options.go - graph configuration, policies and functional options.
//
// Contract:
//   • Options are applied in order onto graphConfig; later options win.
//   • Invalid values do not panic: the first violation is recorded and
//     NewGraph returns it wrapped, before anything is allocated.
//   • Defaults are named constants; nothing is read from globals.

package core

import "fmt"

// Deterministic defaults.
const (
	// DefaultSeed is the master seed used when WithSeed is not given.
	DefaultSeed int64 = 42

	// DefaultInitParallelism is the number of point-generation workers.
	DefaultInitParallelism = 4

	// edgeParallelismFactor derives the edge parallelism from the init
	// parallelism when WithEdgeParallelism is not given.
	edgeParallelismFactor = 2
)

// LockPolicy selects how an accepted edge is committed to the shared matrix.
type LockPolicy uint8

const (
	// Locked serializes the check-and-commit sequence under a graph-wide mutex.
	Locked LockPolicy = iota
	// Unlocked commits lock-free; concurrent workers may duplicate evaluation work.
	Unlocked
)

// String returns "locked" or "unlocked".
func (p LockPolicy) String() string {
	switch p {
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("LockPolicy(%d)", uint8(p))
	}
}

func (p LockPolicy) valid() bool { return p == Locked || p == Unlocked }

// RandPolicy selects where insertion workers draw random numbers from.
type RandPolicy uint8

const (
	// PerWorker gives every batch of attempts its own deterministically seeded source.
	PerWorker RandPolicy = iota
	// Shared makes all workers draw from one mutex-serialized source.
	Shared
)

// String returns "per-worker" or "shared".
func (p RandPolicy) String() string {
	switch p {
	case PerWorker:
		return "per-worker"
	case Shared:
		return "shared"
	default:
		return fmt.Sprintf("RandPolicy(%d)", uint8(p))
	}
}

func (p RandPolicy) valid() bool { return p == PerWorker || p == Shared }

// graphConfig aggregates every construction knob. It is copied into the Graph.
type graphConfig struct {
	seed            int64
	initParallelism int
	edgeParallelism int // 0 means "derive from initParallelism"
	lockPolicy      LockPolicy
	randPolicy      RandPolicy
	observers       []Observer

	err error // first option violation
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

// newGraphConfig applies opts over the defaults and resolves derived values.
// Complexity: O(len(opts)).
func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{
		seed:            DefaultSeed,
		initParallelism: DefaultInitParallelism,
		lockPolicy:      Locked,
		randPolicy:      PerWorker,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.edgeParallelism == 0 {
		cfg.edgeParallelism = cfg.initParallelism * edgeParallelismFactor
	}

	return cfg
}

// fail records the first violation only, so the reported error is stable.
func (c *graphConfig) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// WithSeed sets the master seed for points and insertion streams.
func WithSeed(seed int64) GraphOption {
	return func(c *graphConfig) { c.seed = seed }
}

// WithInitParallelism sets how many workers generate points (P1 ≥ 1).
func WithInitParallelism(p int) GraphOption {
	return func(c *graphConfig) {
		if p < 1 {
			c.fail(fmt.Errorf("WithInitParallelism(%d): %w", p, ErrBadParallelism))
			return
		}
		c.initParallelism = p
	}
}

// WithEdgeParallelism sets how many workers insert and count edges (P2 ≥ 1).
// Without it P2 defaults to twice the init parallelism.
func WithEdgeParallelism(p int) GraphOption {
	return func(c *graphConfig) {
		if p < 1 {
			c.fail(fmt.Errorf("WithEdgeParallelism(%d): %w", p, ErrBadParallelism))
			return
		}
		c.edgeParallelism = p
	}
}

// WithLockPolicy sets the default commit policy for InsertRandomEdges.
func WithLockPolicy(p LockPolicy) GraphOption {
	return func(c *graphConfig) {
		if !p.valid() {
			c.fail(fmt.Errorf("WithLockPolicy(%d): %w", uint8(p), ErrBadPolicy))
			return
		}
		c.lockPolicy = p
	}
}

// WithRandPolicy sets where insertion workers draw randomness from.
func WithRandPolicy(p RandPolicy) GraphOption {
	return func(c *graphConfig) {
		if !p.valid() {
			c.fail(fmt.Errorf("WithRandPolicy(%d): %w", uint8(p), ErrBadPolicy))
			return
		}
		c.randPolicy = p
	}
}

// WithObserver registers o for lifecycle notifications. May be repeated;
// observers are notified in registration order.
func WithObserver(o Observer) GraphOption {
	return func(c *graphConfig) {
		if o == nil {
			c.fail(fmt.Errorf("WithObserver: %w", ErrNilObserver))
			return
		}
		c.observers = append(c.observers, o)
	}
}

// WithHooks registers callback functions as an observer. Nil fields are skipped.
func WithHooks(h Hooks) GraphOption {
	return WithObserver(h)
}

// InsertOption tunes a single InsertRandomEdges call.
type InsertOption func(*insertConfig)

type insertConfig struct {
	policy LockPolicy
}

// WithInsertPolicy overrides the graph's default LockPolicy for one call.
// Unknown values are ignored and the default stays in effect.
func WithInsertPolicy(p LockPolicy) InsertOption {
	return func(c *insertConfig) {
		if p.valid() {
			c.policy = p
		}
	}
}
