// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringq"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wouldBlock bool
		full       bool
		empty      bool
	}{
		{"nil", nil, false, false, false},
		{"ErrWouldBlock", ringq.ErrWouldBlock, true, false, false},
		{"ErrFull", ringq.ErrFull, true, true, false},
		{"ErrEmpty", ringq.ErrEmpty, true, false, true},
		{"wrapped ErrFull", fmt.Errorf("stage 2: %w", ringq.ErrFull), true, true, false},
		{"ErrCapacity", ringq.ErrCapacity, false, false, false},
		{"other", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ringq.IsWouldBlock(tt.err); got != tt.wouldBlock {
				t.Errorf("IsWouldBlock: got %v, want %v", got, tt.wouldBlock)
			}
			if got := ringq.IsFull(tt.err); got != tt.full {
				t.Errorf("IsFull: got %v, want %v", got, tt.full)
			}
			if got := ringq.IsEmpty(tt.err); got != tt.empty {
				t.Errorf("IsEmpty: got %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestErrorsAreControlFlow(t *testing.T) {
	for _, err := range []error{ringq.ErrFull, ringq.ErrEmpty} {
		if !errors.Is(err, iox.ErrWouldBlock) {
			t.Errorf("%v: does not wrap iox.ErrWouldBlock", err)
		}
	}
	if !ringq.IsSemantic(ringq.ErrWouldBlock) {
		t.Error("IsSemantic(ErrWouldBlock): got false")
	}
	if !ringq.IsNonFailure(nil) || !ringq.IsNonFailure(ringq.ErrWouldBlock) {
		t.Error("IsNonFailure: got false for nil or ErrWouldBlock")
	}
	if ringq.IsNonFailure(ringq.ErrCapacity) {
		t.Error("IsNonFailure(ErrCapacity): got true")
	}
	if errors.Is(ringq.ErrFull, ringq.ErrEmpty) {
		t.Error("ErrFull matches ErrEmpty")
	}
}
