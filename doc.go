// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides two fixed-capacity, lock-free FIFO queues.
//
//   - SPSC: Single-Producer Single-Consumer circular buffer
//   - MPMC: Multi-Producer Multi-Consumer queue with per-cell sequence numbers
//
// Neither queue takes a lock, allocates after construction, or blocks.
//
// # Quick Start
//
//	spsc, err := ringq.NewSPSC[Event](1025)  // 1025 slots, 1024 usable
//	mpmc, err := ringq.NewMPMC[*Request](4096)
//
// Builder API, always in usable capacity:
//
//	q, err := ringq.Build[Event](ringq.New(1024).SingleProducer().SingleConsumer()) // → SPSC
//	q, err := ringq.Build[Event](ringq.New(1024))                                   // → MPMC
//
// # Basic Usage
//
//	if !q.Push(ev) {
//	    // full: backpressure
//	}
//	ev, ok := q.Pop()
//	if !ok {
//	    // empty
//	}
//
// Enqueue and Dequeue are the same operations in error form, returning
// [ErrFull] and [ErrEmpty]. Both wrap [ErrWouldBlock] from
// [code.hybscloud.com/iox]:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        break
//	    }
//	    if !ringq.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// # Waiting
//
// Push and Pop never wait. Retry policy belongs to the caller, and
// [PushWait], [PopWait], [PushSpin] and [PopSpin] are ready-made ones:
//
//	if err := ringq.PushWait(ctx, q, item); err != nil {
//	    return err // ctx.Err()
//	}
//
// # Capacity
//
// Capacities are used exactly as given; nothing is rounded to a power of 2.
//
//	NewSPSC[T](n)  n slots, n-1 usable, n >= 2
//	NewMPMC[T](n)  n cells, n usable,   n >= 2
//
// Smaller values return [ErrCapacity].
//
// Len is best effort. It may be stale before it returns and must never be
// used to predict whether Push or Pop will succeed.
//
// Slots are not accessible by index. Reading a slot outside Push/Pop skips
// the acquire/release pairing that makes its contents visible.
//
// # Ordering
//
// SPSC preserves FIFO order exactly. MPMC hands out claims on head and tail
// in a single total order, so items are consumed in claim order, but two
// producers racing do not get a defined order relative to each other.
// Nothing is lost or duplicated in either queue.
//
// # Thread Safety
//
//   - SPSC: one producer goroutine, one consumer goroutine
//   - MPMC: any number of producer and consumer goroutines
//
// Violating the SPSC constraint is not detected and corrupts the queue.
//
// # Race Detection
//
// The race detector cannot observe happens-before edges created through
// atomix acquire/release operations on a different variable than the data
// they guard, and reports false positives for the slot payloads. Concurrent
// tests skip themselves when [RaceEnabled] is set.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomics with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause on CAS retry and
// [code.hybscloud.com/iox] for semantic errors and backoff.
package ringq
