// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Snapshot returns the queued items, oldest first, without removing them.
// Test only: the result is consistent only while no goroutine is pushing
// or popping.
func (q *SPSC[T]) Snapshot() []T {
	var items []T
	for i := q.tail.Load(); i != q.head.Load(); i = (i + 1) % q.slots {
		items = append(items, q.buffer[i])
	}
	return items
}

// Snapshot returns the published items, oldest first, without removing
// them. Test only, same restriction as SPSC.Snapshot.
func (q *MPMC[T]) Snapshot() []T {
	var items []T
	for pos := q.tail.Load(); pos != q.head.Load(); pos++ {
		c := &q.buffer[pos%q.capacity]
		if c.seq.Load() == pos+1 {
			items = append(items, c.data)
		}
	}
	return items
}

// Seq returns the raw sequence number of cell i.
func (q *MPMC[T]) Seq(i int) uint64 {
	return q.buffer[i].seq.Load()
}

// Slot returns the raw payload stored in slot i.
func (q *SPSC[T]) Slot(i int) T {
	return q.buffer[i]
}

// Slot returns the raw payload stored in cell i.
func (q *MPMC[T]) Slot(i int) T {
	return q.buffer[i].data
}
