package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/satchel/internal/adapters/telemetry"
	"go.trai.ch/satchel/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEndLogsSpan(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	var got string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")
	_, span := tracer.Start(context.Background(), "enumerate.round")
	span.SetAttribute("round", 2)
	span.SetAttribute("discovered", 7)
	span.End()

	assert.Regexp(t, `^enumerate\.round round=2 discovered=7 took=\S+$`, got)
}

func TestBridge_OnEndReportsError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	var got string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { got = msg }).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := telemetry.NewOTelTracerWithProvider(tp, "test").Start(context.Background(), "enumerate")
	span.RecordError(errors.New("context canceled"))
	span.End()

	assert.Contains(t, got, `error="context canceled"`)
}

func TestBridge_NilLogger(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "span")
	span.End()
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	t.Parallel()

	bridge := telemetry.NewBridge(nil)
	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))
}
