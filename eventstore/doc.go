// Package eventstore provides the core abstractions for event sourcing with
// dynamic event streams: a stream is not a fixed aggregate identity but
// whatever set of events a Filter selects.
//
// Key types:
//   - Filter: criteria (event types + payload predicates) selecting a stream
//   - StorableEvent: a serialized event that can be stored and retrieved
//
// The append contract is the heart of the consistency model: Append takes the
// same Filter that was used for the preceding Query, together with the
// MaxSequenceNumberUint observed by that Query. The store only inserts the new
// event if no other event matching the Filter has been appended in between.
// A failed condition surfaces as ErrConcurrencyConflict so callers can
// re-query, re-decide, and retry.
//
// Common usage pattern:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.BookBorrowedEventType, core.BookReturnedEventType).
//		AndAnyPredicateOf(eventstore.P("BookID", bookID.String())).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// ... decide ...
//	err = store.Append(ctx, filter, maxSeq, newEvent)
package eventstore
