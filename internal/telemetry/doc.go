// Package telemetry sets up OpenTelemetry tracing. Asset fetches open spans
// on the global tracer; without Setup they go to the no-op provider.
package telemetry
