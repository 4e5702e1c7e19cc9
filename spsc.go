// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"fmt"

	"code.hybscloud.com/atomix"
)

// SPSC is a single-producer single-consumer bounded queue.
//
// A circular buffer of N slots with two cursors. One slot is always left
// empty so that head == tail means empty and head+1 == tail (mod N) means
// full; the usable capacity is N-1.
//
// Each side keeps a private copy of the other side's cursor and reloads
// it (acquire) only when the copy says full or empty, which keeps the
// cursors' cache lines from bouncing on every operation.
//
// Cursor contract:
//
//	head: written by the producer only (release), read by the consumer (acquire)
//	tail: written by the consumer only (release), read by the producer (acquire)
//
// Each side reads its own cursor relaxed.
//
// Exactly one goroutine may push and exactly one goroutine may pop for
// the lifetime of the queue. Violations are not detected.
type SPSC[T any] struct {
	_          pad
	head       atomix.Uint64 // Producer writes here
	_          pad
	cachedTail uint64 // Producer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedHead uint64 // Consumer's cached view of head
	_          pad
	buffer     []T
	slots      uint64
}

// NewSPSC creates an SPSC queue with the given number of slots.
//
// The queue holds at most slots-1 items. Returns ErrCapacity if slots < 2.
func NewSPSC[T any](slots int) (*SPSC[T], error) {
	if slots < 2 {
		return nil, fmt.Errorf("%w: SPSC needs at least 2 slots, got %d", ErrCapacity, slots)
	}

	return &SPSC[T]{
		buffer: make([]T, slots),
		slots:  uint64(slots),
	}, nil
}

// Push adds item to the queue (producer only).
// Returns false if the queue is full.
func (q *SPSC[T]) Push(item T) bool {
	head := q.head.LoadRelaxed()
	next := head + 1
	if next == q.slots {
		next = 0
	}
	if next == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if next == q.cachedTail {
			return false
		}
	}

	q.buffer[head] = item
	q.head.StoreRelease(next)
	return true
}

// Pop removes and returns the oldest item (consumer only).
// Returns (zero-value, false) if the queue is empty.
func (q *SPSC[T]) Pop() (T, bool) {
	tail := q.tail.LoadRelaxed()
	if tail == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if tail == q.cachedHead {
			var zero T
			return zero, false
		}
	}

	item := q.buffer[tail]
	var zero T
	q.buffer[tail] = zero
	next := tail + 1
	if next == q.slots {
		next = 0
	}
	q.tail.StoreRelease(next)
	return item, true
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrFull if the queue is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	if !q.Push(*elem) {
		return ErrFull
	}
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrEmpty) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	item, ok := q.Pop()
	if !ok {
		return item, ErrEmpty
	}
	return item, nil
}

// Cap returns the usable capacity, one less than the slot count.
func (q *SPSC[T]) Cap() int {
	return int(q.slots - 1)
}

// Slots returns the number of physical slots the queue was built with.
func (q *SPSC[T]) Slots() int {
	return int(q.slots)
}

// Len returns an approximate item count. Informational only.
func (q *SPSC[T]) Len() int {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	return int((head + q.slots - tail) % q.slots)
}
