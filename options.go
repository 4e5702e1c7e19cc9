// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "fmt"

// Options configures queue creation and algorithm selection.
type Options struct {
	// Producer/Consumer constraints (determines queue type)
	singleProducer bool
	singleConsumer bool

	// Usable capacity, as seen through Cap()
	capacity int
}

// Builder creates queues with fluent configuration.
//
// The builder always speaks in usable capacity: a queue built from
// New(n) reports Cap() == n whichever algorithm is selected. For SPSC
// this means n+1 slots are allocated.
//
// Example:
//
//	// SPSC queue (one producer goroutine, one consumer goroutine)
//	q, err := ringq.BuildSPSC[Event](ringq.New(1024).SingleProducer().SingleConsumer())
//
//	// MPMC queue (default, general purpose)
//	q, err := ringq.BuildMPMC[Request](ringq.New(4096))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given usable capacity.
//
// Capacity is validated when the queue is built, not here.
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will push.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will pop.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Queue[T] with automatic algorithm selection.
//
// Algorithm selection:
//
//	SingleProducer + SingleConsumer → SPSC (Lamport ring buffer)
//	Anything else                   → MPMC (per-cell sequence numbers)
//
// A one-sided constraint still selects MPMC: it is correct for any number
// of producers and consumers, including one.
func Build[T any](b *Builder) (Queue[T], error) {
	if b.opts.singleProducer && b.opts.singleConsumer {
		q, err := newSPSCUsable[T](b.opts.capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
	q, err := NewMPMC[T](b.opts.capacity)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Returns ErrConstraint if the builder is not configured with
// SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) (*SPSC[T], error) {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		return nil, fmt.Errorf("%w: BuildSPSC requires SingleProducer().SingleConsumer()", ErrConstraint)
	}
	return newSPSCUsable[T](b.opts.capacity)
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// Returns ErrConstraint if the builder declares both a single producer
// and a single consumer; use BuildSPSC for that.
func BuildMPMC[T any](b *Builder) (*MPMC[T], error) {
	if b.opts.singleProducer && b.opts.singleConsumer {
		return nil, fmt.Errorf("%w: BuildMPMC with SingleProducer().SingleConsumer(), use BuildSPSC", ErrConstraint)
	}
	return NewMPMC[T](b.opts.capacity)
}

func newSPSCUsable[T any](capacity int) (*SPSC[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: SPSC needs a usable capacity of at least 1, got %d", ErrCapacity, capacity)
	}
	return NewSPSC[T](capacity + 1)
}
