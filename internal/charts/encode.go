// Package charts builds the dashboard charts and encodes them as inline PNG images.
package charts

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/jonathan/ai-job-dashboard/internal/charts")

// Chart is a constructed chart that can draw itself as a PNG image.
// Render must create its drawing canvas inside the call and release it
// before returning, so a Chart never shares a canvas with another render.
type Chart interface {
	Name() string
	Render(w io.Writer) error
}

// Encode renders c and returns the PNG bytes as standard base64, ready for
// a data:image/png;base64 URI.
func Encode(ctx context.Context, c Chart) (string, error) {
	_, span := tracer.Start(ctx, "charts.encode")
	defer span.End()
	span.SetAttributes(attribute.String("chart.name", c.Name()))

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return "", &RenderError{
			Chart:   c.Name(),
			Message: "failed to render chart",
			Cause:   err,
		}
	}
	span.SetAttributes(attribute.Int("chart.png_bytes", buf.Len()))

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
