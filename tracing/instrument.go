package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/primlock/generator"
)

// Instrument wraps g in a generator that emits one span per resume under
// the given name. Spans record the wrapped instance's identifier and the
// resume ordinal; a producer failure is recorded on the span that observed
// it and propagated unchanged.
//
// The returned generator takes ownership of g: the caller must drive and
// stop only the wrapper. Stopping the wrapper stops g.
func Instrument[T any](ctx context.Context, name string, g generator.Generator[T]) generator.Generator[T] {
	tracer := otel.Tracer(tracerName)
	resumes := 0

	step := func() (T, bool, error) {
		resumes++
		_, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
		defer span.End()
		span.SetAttributes(
			attribute.String("generator.id", g.ID()),
			attribute.Int("generator.resume", resumes),
		)

		var zero T
		if g.Next() {
			span.SetStatus(codes.Ok, "")
			return g.Value(), true, nil
		}
		if err := g.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return zero, false, err
		}
		span.SetStatus(codes.Ok, "")
		return zero, false, nil
	}

	return generator.NewWithRelease(step, g.Stop)
}
