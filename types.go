// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Queue is the combined producer-consumer interface implemented by
// [SPSC] and [MPMC].
//
// Every operation is non-blocking. A full queue rejects Push, an empty
// queue rejects Pop, and neither condition is an error in the failure
// sense. Waiting is the caller's policy; see [PushWait] and [PopWait].
//
// Example:
//
//	q, err := ringq.NewMPMC[int](1024)
//	if err != nil {
//	    return err
//	}
//	if !q.Push(42) {
//	    // full: back off and retry, or drop
//	}
//	if v, ok := q.Pop(); ok {
//	    fmt.Println(v)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Cap returns the number of items the queue can hold at once.
	Cap() int

	// Len returns an approximate number of queued items.
	// The value may be stale by the time it is returned and must not
	// be used to decide whether Push or Pop will succeed.
	Len() int
}

// Producer is the enqueue side of a queue.
type Producer[T any] interface {
	// Push copies item into the queue.
	// Returns false without side effects if the queue is full.
	Push(item T) bool

	// Enqueue is Push in error form: nil on success, ErrFull otherwise.
	Enqueue(elem *T) error
}

// Consumer is the dequeue side of a queue.
type Consumer[T any] interface {
	// Pop removes and returns the next item.
	// Returns (zero-value, false) if the queue is empty.
	Pop() (T, bool)

	// Dequeue is Pop in error form: (item, nil) on success,
	// (zero-value, ErrEmpty) otherwise.
	Dequeue() (T, error)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
