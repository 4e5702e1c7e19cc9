// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package qtest drives push/pop functions from many goroutines and checks
// conservation: every value pushed is popped exactly once and nothing is
// popped that was never pushed.
//
// The harness only sees two closures, so it works for any queue whose
// element type can carry an int tag.
package qtest

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Config describes one conservation run.
type Config struct {
	Producers   int
	Consumers   int
	PerProducer int

	// Timeout bounds every goroutine. Zero means 10 seconds.
	Timeout time.Duration

	// CheckProducerOrder verifies that each producer's values come out in
	// the order it pushed them. Only meaningful with a single consumer.
	CheckProducerOrder bool
}

// Total is the number of values the run pushes.
func (c Config) Total() int {
	return c.Producers * c.PerProducer
}

// Report is the outcome of a run.
type Report struct {
	Pushed     int64
	Popped     int64
	Duplicates int
	Missing    int
	Foreign    int // popped values outside the pushed range
	Reorders   int // only counted with CheckProducerOrder
	TimedOut   bool
}

// Err returns nil if the run conserved every value.
func (r Report) Err() error {
	var errs []error
	if r.TimedOut {
		errs = append(errs, errors.New("timed out"))
	}
	if r.Pushed != r.Popped {
		errs = append(errs, fmt.Errorf("pushed %d, popped %d", r.Pushed, r.Popped))
	}
	if r.Duplicates > 0 {
		errs = append(errs, fmt.Errorf("%d duplicate values", r.Duplicates))
	}
	if r.Missing > 0 {
		errs = append(errs, fmt.Errorf("%d missing values", r.Missing))
	}
	if r.Foreign > 0 {
		errs = append(errs, fmt.Errorf("%d fabricated values", r.Foreign))
	}
	if r.Reorders > 0 {
		errs = append(errs, fmt.Errorf("%d per-producer order violations", r.Reorders))
	}
	return errors.Join(errs...)
}

// Tag is the value producer p pushes as its i-th item.
// Ranges of different producers never overlap.
func Tag(cfg Config, p, i int) int {
	return p*cfg.PerProducer + i
}

// Run starts cfg.Producers goroutines calling push and cfg.Consumers
// goroutines calling pop until all cfg.Total() values are collected or the
// timeout expires. push and pop are the non-blocking queue operations; Run
// supplies the retry loop.
func Run(cfg Config, push func(v int) bool, pop func() (int, bool)) Report {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	total := cfg.Total()
	deadline := time.Now().Add(timeout)

	seen := make([]atomix.Int32, total)
	last := make([]int, cfg.Producers)
	for i := range last {
		last[i] = -1
	}

	var pushed, popped, foreign, reorders atomix.Int64
	var timedOut atomix.Bool
	var wg sync.WaitGroup

	for p := range cfg.Producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for i := range cfg.PerProducer {
				v := Tag(cfg, id, i)
				for !push(v) {
					if time.Now().After(deadline) {
						timedOut.Store(true)
						return
					}
					backoff.Wait()
				}
				backoff.Reset()
				pushed.Add(1)
			}
		}(p)
	}

	for range cfg.Consumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for popped.Load() < int64(total) {
				v, ok := pop()
				if !ok {
					if time.Now().After(deadline) {
						timedOut.Store(true)
						return
					}
					backoff.Wait()
					continue
				}
				backoff.Reset()
				popped.Add(1)
				if v < 0 || v >= total {
					foreign.Add(1)
					continue
				}
				seen[v].Add(1)
				if cfg.CheckProducerOrder {
					id, seq := v/cfg.PerProducer, v%cfg.PerProducer
					if seq <= last[id] {
						reorders.Add(1)
					}
					last[id] = seq
				}
			}
		}()
	}

	wg.Wait()

	r := Report{
		Pushed:   pushed.Load(),
		Popped:   popped.Load(),
		Foreign:  int(foreign.Load()),
		Reorders: int(reorders.Load()),
		TimedOut: timedOut.Load(),
	}
	for i := range seen {
		switch n := seen[i].Load(); {
		case n == 0:
			r.Missing++
		case n > 1:
			r.Duplicates += int(n - 1)
		}
	}
	return r
}

// CheckOrder returns an error describing the first position where popped
// differs from pushed.
func CheckOrder(pushed, popped []int) error {
	for i := range min(len(pushed), len(popped)) {
		if pushed[i] != popped[i] {
			return fmt.Errorf("position %d: got %d, want %d", i, popped[i], pushed[i])
		}
	}
	if len(pushed) != len(popped) {
		return fmt.Errorf("length: got %d, want %d", len(popped), len(pushed))
	}
	return nil
}
