package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracer_NoEndpoint(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := InitTracer(context.Background(), "jobdash", "test", "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestInstallProvider_ExportsSpans(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	exporter := tracetest.NewInMemoryExporter()
	provider, err := installProvider(context.Background(), exporter, "jobdash", "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := otel.Tracer("test").Start(context.Background(), "skills.render")
	span.End()
	require.NoError(t, provider.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "skills.render", spans[0].Name)

	var service string
	for _, attr := range spans[0].Resource.Attributes() {
		if attr.Key == "service.name" {
			service = attr.Value.AsString()
		}
	}
	assert.Equal(t, "jobdash", service)
}
