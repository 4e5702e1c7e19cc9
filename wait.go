// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// PushWait pushes item, backing off while the queue is full, until it
// succeeds or ctx is done.
//
// The queue itself never blocks; PushWait is one retry policy layered on
// top of it. It returns nil on success and ctx.Err() on cancellation.
// The usual single-producer rule still applies when p is an SPSC.
func PushWait[T any](ctx context.Context, p Producer[T], item T) error {
	backoff := iox.Backoff{}
	for !p.Push(item) {
		if err := ctx.Err(); err != nil {
			return err
		}
		backoff.Wait()
	}
	return nil
}

// PopWait pops an item, backing off while the queue is empty, until it
// succeeds or ctx is done.
func PopWait[T any](ctx context.Context, c Consumer[T]) (T, error) {
	backoff := iox.Backoff{}
	for {
		if item, ok := c.Pop(); ok {
			return item, nil
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		backoff.Wait()
	}
}

// PushSpin retries Push up to attempts times, pausing the CPU between
// tries. Returns false if every attempt found the queue full.
// attempts < 1 is treated as 1.
func PushSpin[T any](p Producer[T], item T, attempts int) bool {
	sw := spin.Wait{}
	for i := 0; ; i++ {
		if p.Push(item) {
			return true
		}
		if i+1 >= attempts {
			return false
		}
		sw.Once()
	}
}

// PopSpin retries Pop up to attempts times, pausing the CPU between tries.
func PopSpin[T any](c Consumer[T], attempts int) (T, bool) {
	sw := spin.Wait{}
	for i := 0; ; i++ {
		if item, ok := c.Pop(); ok {
			return item, true
		}
		if i+1 >= attempts {
			var zero T
			return zero, false
		}
		sw.Once()
	}
}
