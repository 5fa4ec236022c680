// Package shell contains the imperative glue between the pure domain core and
// the event store: serialization of domain events to storable events and back,
// event metadata, retry logic for optimistic concurrency conflicts, and the
// observability plumbing shared by all command and query handlers.
//
// The core package never imports this package. Handlers in features/ use it to
// load history, run a pure decision, and append the resulting event.
package shell
