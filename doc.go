// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package stockbench holds the benchmark results table produced by the stock
// market benchmark runner and consumed by the plotting tool. A table is a
// flat list of rows, each recording how long one of the benchmarked functions
// took, and how much memory it allocated, at a given input size.
//
// Tables are read from CSV with the header Function,InputSize,TimeMs,MemoryKB
// or from the Go benchmark format understood by benchstat, and can be written
// back out in either form. Rows keep file order, which is the order in which
// the plotting tool connects the points of each line.
//
// The chart package turns a table into the 2x3 comparison figure, and the
// commands under internal/cmd tie loading, summarising, rendering and running
// benchmarks together.
package stockbench
