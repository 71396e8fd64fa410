// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"os"

	"github.com/petenewcomb/stockbench-go/internal/runner"
	"gopkg.in/cheggaaa/pb.v1"
)

// progress reports finished cases on a terminal progress bar.
type progress struct {
	bar *pb.ProgressBar
}

func newProgress(total int) *progress {
	bar := pb.New(total)
	bar.Output = os.Stderr
	bar.ShowSpeed = false
	bar.Start()
	return &progress{bar: bar}
}

func (p *progress) CaseStarted(c runner.Case, index, total int) {
	p.bar.Prefix(fmt.Sprintf("%s/size=%d ", c.Function(), c.Size))
}

func (p *progress) CaseFinished(c runner.Case, index, total int, res runner.Result) {
	p.bar.Increment()
}

func (p *progress) finish() {
	p.bar.Finish()
}
