// Package tracing wraps OpenTelemetry spans around process import and export.
// Applications that do not call Init get no-op spans.
package tracing
