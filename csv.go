// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stockbench

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/petenewcomb/stockbench-go"

// ReadCSV reads a results table from r. The first record must be a header
// naming at least the Function, InputSize, TimeMs and MemoryKB columns, in any
// order. Other columns are ignored.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrapf(ErrMissingColumn, "empty input, expected header %v", Header)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	index := make([]int, len(Header))
	for i, name := range Header {
		idx, ok := columns[name]
		if !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", name)
		}
		index[i] = idx
	}
	fnIdx, sizeIdx, timeIdx, memIdx := index[0], index[1], index[2], index[3]

	t := &Table{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading row")
		}

		malformed := func(idx int, err error) error {
			line, _ := cr.FieldPos(idx)
			return errors.Wrapf(ErrMalformedRow, "line %d column %s: %v", line, header[idx], err)
		}

		size, err := strconv.Atoi(record[sizeIdx])
		if err != nil {
			return nil, malformed(sizeIdx, err)
		}
		timeMs, err := strconv.ParseFloat(record[timeIdx], 64)
		if err != nil {
			return nil, malformed(timeIdx, err)
		}
		memoryKB, err := strconv.ParseFloat(record[memIdx], 64)
		if err != nil {
			return nil, malformed(memIdx, err)
		}

		t.Rows = append(t.Rows, Row{
			Function:  record[fnIdx],
			InputSize: size,
			TimeMs:    timeMs,
			MemoryKB:  memoryKB,
		})
	}
	return t, nil
}

// LoadCSV reads the results table stored at path.
func LoadCSV(ctx context.Context, path string) (*Table, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "LoadCSV",
		trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening results")
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	span.SetAttributes(attribute.Int("rows", t.Len()))
	zap.L().Debug("Loaded results",
		zap.String("path", path),
		zap.Int("rows", t.Len()))
	return t, nil
}

// WriteCSV writes rows to w under the canonical header. TimeMs is written with
// four decimal places and MemoryKB in its shortest exact form.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		err := cw.Write([]string{
			row.Function,
			strconv.Itoa(row.InputSize),
			strconv.FormatFloat(row.TimeMs, 'f', 4, 64),
			strconv.FormatFloat(row.MemoryKB, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes rows to the file at path, replacing it if it exists.
func SaveCSV(ctx context.Context, path string, rows []Row) (err error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "SaveCSV",
		trace.WithAttributes(
			attribute.String("path", path),
			attribute.Int("rows", len(rows)),
		))
	defer span.End()

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating results file")
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()

	if err := WriteCSV(f, rows); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
