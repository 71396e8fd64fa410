// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/petenewcomb/stockbench-go"
)

func formatMs(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatKB(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// printSummary writes a per-function table followed by the n slowest cases.
func printSummary(w io.Writer, t *stockbench.Table, n int) error {
	summaries, err := stockbench.Summarize(t)
	if err != nil {
		return err
	}

	output := tablewriter.NewWriter(w)
	output.SetHeader([]string{"Function", "Rows", "Input Sizes", "Mean Time (ms)", "Max Time (ms)", "Mean Memory (KB)", "Max Memory (KB)"})
	for _, s := range summaries {
		output.Append([]string{
			s.Function,
			strconv.Itoa(s.Rows),
			fmt.Sprintf("%d-%d", s.MinSize, s.MaxSize),
			formatMs(s.MeanTimeMs),
			formatMs(s.MaxTimeMs),
			formatKB(s.MeanMemoryKB),
			formatKB(s.MaxMemoryKB),
		})
	}
	output.Render()

	slowest := stockbench.Slowest(t, n)
	if len(slowest) == 0 {
		return nil
	}
	output = tablewriter.NewWriter(w)
	output.SetHeader([]string{"Slowest", "Input Size", "Time (ms)", "Memory (KB)"})
	for _, row := range slowest {
		output.Append([]string{
			row.Function,
			strconv.Itoa(row.InputSize),
			formatMs(row.TimeMs),
			formatKB(row.MemoryKB),
		})
	}
	output.Render()
	return nil
}
