package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("plg", "0.0.1", exporter))

	ctx, parent := StartSpan(context.Background(), "import")
	parent.WithAttributes(map[string]string{"url": "mem://localhost/a.plg"}).WithInt("nodes", 3)
	current, ok := SpanFromContext(ctx)
	require.True(t, ok)
	assert.NotNil(t, current)

	_, child := StartSpan(ctx, "decode")
	EndSpan(child, errors.New("bad document"))
	EndSpan(parent, nil)
	EndSpan(nil, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "decode", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
	assert.Equal(t, "import", spans[1].Name)
	assert.Equal(t, codes.Ok, spans[1].Status.Code)
	assert.Contains(t, spans[1].Attributes, attribute.String("url", "mem://localhost/a.plg"))
	assert.Contains(t, spans[1].Attributes, attribute.Int("nodes", 3))

	_, ok = SpanFromContext(context.Background())
	assert.False(t, ok)

	outputFile := filepath.Join(t.TempDir(), "spans.json")
	require.NoError(t, Init("plg", "0.0.1", outputFile))
	_, err := os.Stat(outputFile)
	assert.True(t, os.IsNotExist(err), "output file must not be created once a provider is installed")

	require.NoError(t, Shutdown(context.Background()))
	require.NoError(t, Shutdown(context.Background()))
}
