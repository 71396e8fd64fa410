// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stockbench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchproc"
)

// ReadBenchfmt reads results in the Go benchmark format, as written by "go
// test -bench" or WriteBenchfmt. Each result named Function/size=N becomes one
// row. Time is taken from sec/op (or ns/op when untidied) and memory from
// B/op; a result lacking either metric records zero for it. Lines that fail
// to parse are logged and skipped.
func ReadBenchfmt(r io.Reader, fileName string) (*Table, error) {
	var pp benchproc.ProjectionParser
	functionP, err := pp.Parse(".name", nil)
	if err != nil {
		return nil, err
	}
	sizeP, err := pp.Parse("/size", nil)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	reader := benchfmt.NewReader(r, fileName)
	for reader.Scan() {
		var res *benchfmt.Result
		switch rec := reader.Result(); rec := rec.(type) {
		case *benchfmt.Result:
			res = rec
		case *benchfmt.SyntaxError:
			zap.L().Warn("Skipping malformed benchmark line", zap.Error(rec))
			continue
		default:
			continue
		}

		function := functionP.Project(res).Get(functionP.Fields()[0])
		sizeText := sizeP.Project(res).Get(sizeP.Fields()[0])
		size, err := strconv.Atoi(sizeText)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "benchmark %s: size %q: %v", res.Name.Full(), sizeText, err)
		}

		row := Row{
			Function:  function,
			InputSize: size,
		}
		if v, ok := res.Value("sec/op"); ok {
			row.TimeMs = v * 1e3
		} else if v, ok := res.Value("ns/op"); ok {
			row.TimeMs = v / 1e6
		}
		if v, ok := res.Value("B/op"); ok {
			row.MemoryKB = v / 1024
		}
		t.Rows = append(t.Rows, row)
	}
	if err := reader.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", fileName)
	}
	return t, nil
}

// WriteBenchfmt writes rows in the Go benchmark format so that they can be
// compared with benchstat. Each row becomes a single-iteration result whose
// ns/op and B/op carry the row's whole TimeMs and MemoryKB.
func WriteBenchfmt(w io.Writer, rows []Row) error {
	bw := benchfmt.NewWriter(w)
	for _, row := range rows {
		res := &benchfmt.Result{
			Config: []benchfmt.Config{
				{Key: "pkg", Value: []byte("github.com/petenewcomb/stockbench-go/internal/market"), File: true},
			},
			Name:  benchfmt.Name(fmt.Sprintf("%s/size=%d", row.Function, row.InputSize)),
			Iters: 1,
			Values: []benchfmt.Value{
				{Value: row.TimeMs * 1e6, Unit: "ns/op"},
				{Value: row.MemoryKB * 1024, Unit: "B/op"},
			},
		}
		if err := bw.Write(res); err != nil {
			return errors.Wrapf(err, "writing %s", res.Name.Full())
		}
	}
	return nil
}
