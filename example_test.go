// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// Some examples hand items between goroutines through the queues. The race
// detector cannot see the ordering the queues provide and reports false
// positives, so the file is excluded from race testing.

package ringq_test

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringq"
)

// ExampleNewSPSC demonstrates the N-1 usable slots of an SPSC ring.
func ExampleNewSPSC() {
	q, err := ringq.NewSPSC[int](5)
	if err != nil {
		panic(err)
	}

	for i := 1; i <= 5; i++ {
		fmt.Println("push", i, q.Push(i*10))
	}

	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		fmt.Println("pop", v)
	}

	// Output:
	// push 1 true
	// push 2 true
	// push 3 true
	// push 4 true
	// push 5 false
	// pop 10
	// pop 20
	// pop 30
	// pop 40
}

// ExampleNewMPMC demonstrates several producers sharing one queue.
func ExampleNewMPMC() {
	q, err := ringq.NewMPMC[string](16)
	if err != nil {
		panic(err)
	}

	var wg sync.WaitGroup
	for p := range 3 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for !q.Push(fmt.Sprintf("msg from producer %d", id)) {
				backoff.Wait()
			}
		}(p)
	}
	wg.Wait()

	for {
		msg, ok := q.Pop()
		if !ok {
			break
		}
		fmt.Println(msg)
	}

	// Unordered output:
	// msg from producer 0
	// msg from producer 1
	// msg from producer 2
}

// ExampleBuild demonstrates algorithm selection by the builder.
func ExampleBuild() {
	spsc, _ := ringq.Build[int](ringq.New(64).SingleProducer().SingleConsumer())
	mpmc, _ := ringq.Build[int](ringq.New(64))

	fmt.Printf("%T capacity: %d\n", spsc, spsc.Cap())
	fmt.Printf("%T capacity: %d\n", mpmc, mpmc.Cap())

	_, err := ringq.Build[int](ringq.New(1))
	fmt.Println(err)

	// Output:
	// *ringq.SPSC[int] capacity: 64
	// *ringq.MPMC[int] capacity: 64
	// ringq: invalid capacity: MPMC needs at least 2 cells, got 1
}

// ExamplePushWait demonstrates a blocking pipeline stage built on top of
// the non-blocking queue.
func ExamplePushWait() {
	q, _ := ringq.NewSPSC[int](3)
	ctx := context.Background()

	done := make(chan []int)
	go func() {
		var got []int
		for range 6 {
			v, err := ringq.PopWait[int](ctx, q)
			if err != nil {
				break
			}
			got = append(got, v)
		}
		done <- got
	}()

	for v := range slices.Values([]int{1, 1, 2, 3, 5, 8}) {
		if err := ringq.PushWait(ctx, q, v); err != nil {
			panic(err)
		}
	}
	fmt.Println(<-done)

	// Output:
	// [1 1 2 3 5 8]
}

// ExampleIsWouldBlock demonstrates the error-form API.
func ExampleIsWouldBlock() {
	q, _ := ringq.NewMPMC[int](2)

	for i := range 3 {
		if err := q.Enqueue(&i); err != nil {
			fmt.Println(i, err, ringq.IsWouldBlock(err))
		}
	}
	q.Dequeue()
	q.Dequeue()
	if _, err := q.Dequeue(); ringq.IsEmpty(err) {
		fmt.Println(err)
	}

	// Output:
	// 2 ringq: queue full true
	// ringq: queue empty
}
