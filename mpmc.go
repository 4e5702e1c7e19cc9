// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMC is a CAS-based multi-producer multi-consumer bounded queue.
//
// Based on Dmitry Vyukov's bounded MPMC queue. Every cell carries a
// sequence number naming the generation it currently belongs to:
//
//	seq == pos      free, waiting for the producer that claims pos
//	seq == pos+1    written, waiting for the consumer that claims pos
//	seq == pos+N    free again, waiting for the producer one lap later
//
// Producers contend only on head and consumers only on tail. A claim
// succeeds only when the observed sequence equals the exact generation the
// claimer expects, so a value left over from an earlier lap can never be
// mistaken for the current one (ABA safety).
//
// Field contract:
//
//	head, tail: claim counters, read relaxed, advanced by CAS
//	cell.seq:   read acquire before touching data, stored release after
//
// Lock-free, not wait-free: a goroutine that keeps losing the CAS retries,
// but some other goroutine made progress each time it lost.
//
// Memory: N cells, each padded to a cache line.
type MPMC[T any] struct {
	_        pad
	head     atomix.Uint64 // Producer claim counter
	_        pad
	tail     atomix.Uint64 // Consumer claim counter
	_        pad
	buffer   []cell[T]
	capacity uint64
}

type cell[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort // Pad to cache line
}

// NewMPMC creates an MPMC queue holding up to capacity items.
//
// Capacity is used as given, not rounded. Returns ErrCapacity if
// capacity < 2: with a single cell the "written" generation pos+1 and the
// "free next lap" generation pos+N coincide.
func NewMPMC[T any](capacity int) (*MPMC[T], error) {
	if capacity < 2 {
		return nil, fmt.Errorf("%w: MPMC needs at least 2 cells, got %d", ErrCapacity, capacity)
	}

	n := uint64(capacity)
	q := &MPMC[T]{
		buffer:   make([]cell[T], n),
		capacity: n,
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q, nil
}

// Push adds item to the queue.
// Returns false if the queue is full.
func (q *MPMC[T]) Push(item T) bool {
	sw := spin.Wait{}
	for {
		head := q.head.LoadRelaxed()
		c := &q.buffer[head%q.capacity]
		seq := c.seq.LoadAcquire()
		diff := int64(seq - head)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				c.data = item
				c.seq.StoreRelease(head + 1)
				return true
			}
		} else if diff < 0 {
			return false
		}
		sw.Once()
	}
}

// Pop removes and returns an item.
// Returns (zero-value, false) if the queue is empty.
func (q *MPMC[T]) Pop() (T, bool) {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadRelaxed()
		c := &q.buffer[tail%q.capacity]
		seq := c.seq.LoadAcquire()
		diff := int64(seq - (tail + 1))

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				item := c.data
				var zero T
				c.data = zero
				c.seq.StoreRelease(tail + q.capacity)
				return item, true
			}
		} else if diff < 0 {
			var zero T
			return zero, false
		}
		sw.Once()
	}
}

// Enqueue adds an element to the queue.
// Returns ErrFull if the queue is full.
func (q *MPMC[T]) Enqueue(elem *T) error {
	if !q.Push(*elem) {
		return ErrFull
	}
	return nil
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrEmpty) if the queue is empty.
func (q *MPMC[T]) Dequeue() (T, error) {
	item, ok := q.Pop()
	if !ok {
		return item, ErrEmpty
	}
	return item, nil
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.capacity)
}

// Len returns an approximate item count, clamped to [0, Cap()].
// Claimed but not yet published cells are counted.
func (q *MPMC[T]) Len() int {
	tail := q.tail.LoadAcquire()
	head := q.head.LoadAcquire()
	n := int64(head - tail)
	switch {
	case n < 0:
		return 0
	case n > int64(q.capacity):
		return int(q.capacity)
	}
	return int(n)
}
