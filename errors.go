// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// It is an alias for [iox.ErrWouldBlock]. [ErrFull] and [ErrEmpty] both
// wrap it, so callers that only care about "try again later" can test for
// ErrWouldBlock alone.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrFull is returned by Enqueue when every usable slot is occupied.
//
// ErrFull is a control flow signal, not a failure. Retry later, or use
// [PushWait] to let a backoff policy do it.
var ErrFull error = &wouldBlockError{msg: "ringq: queue full"}

// ErrEmpty is returned by Dequeue when no item is available.
var ErrEmpty error = &wouldBlockError{msg: "ringq: queue empty"}

// ErrCapacity is returned by constructors when the requested capacity
// is below the minimum a queue can work with.
var ErrCapacity = errors.New("ringq: invalid capacity")

// ErrConstraint is returned by the typed Build functions when the builder's
// producer/consumer constraints do not match the requested queue type.
var ErrConstraint = errors.New("ringq: builder constraint mismatch")

// wouldBlockError tells full from empty while still classifying as
// iox.ErrWouldBlock.
type wouldBlockError struct {
	msg string
}

func (e *wouldBlockError) Error() string { return e.msg }

func (e *wouldBlockError) Unwrap() error { return iox.ErrWouldBlock }

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// IsFull reports whether err is (or wraps) [ErrFull].
func IsFull(err error) bool {
	return errors.Is(err, ErrFull)
}

// IsEmpty reports whether err is (or wraps) [ErrEmpty].
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}
