// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/petenewcomb/stockbench-go/internal/telemetry"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	chk := require.New(t)

	logger, err := telemetry.NewLogger("warn", false)
	chk.NoError(err)
	chk.False(logger.Core().Enabled(zapcore.InfoLevel))
	chk.True(logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = telemetry.NewLogger("debug", true)
	chk.NoError(err)
	chk.True(logger.Core().Enabled(zapcore.DebugLevel))

	_, err = telemetry.NewLogger("loud", false)
	chk.Error(err)
}

func TestStartTracing(t *testing.T) {
	chk := require.New(t)

	var buf bytes.Buffer
	shutdown, err := telemetry.StartTracing(&buf)
	chk.NoError(err)

	_, span := otel.Tracer("telemetry_test").Start(context.Background(), "traced-operation")
	span.End()

	chk.NoError(shutdown(context.Background()))
	chk.Contains(buf.String(), "traced-operation")
}
