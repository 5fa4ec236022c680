// Package oteladapters provides OpenTelemetry implementations of the
// observability interfaces used by the event store and the command and query
// handlers: a contextual logger built on the otelslog bridge and a metrics
// collector built on the OpenTelemetry metrics API.
package oteladapters
