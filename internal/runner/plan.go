// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package runner

import (
	"github.com/gammazero/deque"
)

// Case is one benchmark at one input size.
type Case struct {
	Benchmark *Benchmark
	Size      int
}

func (c Case) Function() string {
	return c.Benchmark.Function
}

// Plan queues every benchmark at every size. All benchmarks run at a size
// before moving on to the next size.
func Plan(sizes []int, benches []Benchmark) *deque.Deque[Case] {
	var plan deque.Deque[Case]
	for _, size := range sizes {
		for i := range benches {
			plan.PushBack(Case{Benchmark: &benches[i], Size: size})
		}
	}
	return &plan
}
