package borrowbook

import (
	"context"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
	"github.com/libris-app/libris/shell"
)

// EventStore defines the interface needed by the CommandHandler for event store operations.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		event eventstore.StorableEvent,
	) error
}

// CommandHandler orchestrates the command processing workflow:
// Query -> Unmarshal -> Decide -> Append, with retry on concurrency conflicts.
//
// When a concurrent borrow wins the conditional append, the retry re-reads
// the history and the re-decision surfaces the borrow conflict as a domain
// error instead of appending a second loan record.
type CommandHandler struct {
	eventStore   EventStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(eventStore EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the command processing workflow with retry logic and
// returns the appended loan event.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.BookBorrowed, error) {
	var appended core.BookBorrowed

	err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		event, execErr := h.executeCommand(retryCtx, command)
		if execErr != nil {
			return execErr
		}

		appended = event

		return nil
	}, h.retryOptions...)

	if err != nil {
		return core.BookBorrowed{}, err
	}

	return appended, nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (core.BookBorrowed, error) {
	filter := BuildEventFilter(command.BookID, command.UserID)

	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return core.BookBorrowed{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return core.BookBorrowed{}, err
	}

	result := Decide(history, command)
	if decideErr := result.HasError(); decideErr != nil {
		return core.BookBorrowed{}, decideErr
	}

	uid := uuid.New()
	eventMetadata := shell.BuildEventMetadata(uid, uid, uid)

	storableEvent, marshalErr := shell.StorableEventFrom(result.Event, eventMetadata)
	if marshalErr != nil {
		return core.BookBorrowed{}, marshalErr
	}

	if appendErr := h.eventStore.Append(ctx, filter, maxSequenceNumber, storableEvent); appendErr != nil {
		return core.BookBorrowed{}, appendErr
	}

	return result.Event.(core.BookBorrowed), nil
}
