// Package tracing instruments generators with OpenTelemetry spans, one per
// resume. All instrumentation is kept in a separate package so that
// applications which do not require tracing can exclude it, and the
// OpenTelemetry SDK, from their build.
package tracing
