package catalogbooks

import (
	"context"
	"time"

	"github.com/libris-app/libris/eventstore"
	"github.com/libris-app/libris/shell"
)

const (
	queryType = "CatalogBooks"
)

// EventStore defines the interface needed by the QueryHandler for event store operations.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// QueryHandler orchestrates the query processing workflow: Query -> Unmarshal -> Project.
// Queries read with eventual consistency and may be served by a replica.
type QueryHandler struct {
	eventStore       EventStore
	metricsCollector shell.MetricsCollector
	contextualLogger shell.ContextualLogger
}

// Option configures a QueryHandler.
type Option func(*QueryHandler) error

// WithMetricsCollector sets the metrics collector for the handler.
func WithMetricsCollector(collector shell.MetricsCollector) Option {
	return func(h *QueryHandler) error {
		if collector == nil {
			return shell.ErrNilMetricsCollector
		}

		h.metricsCollector = collector

		return nil
	}
}

// WithContextualLogger sets the contextual logger for the handler.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(h *QueryHandler) error {
		h.contextualLogger = logger
		return nil
	}
}

// NewQueryHandler creates a new QueryHandler with optional configuration.
func NewQueryHandler(eventStore EventStore, opts ...Option) (QueryHandler, error) {
	h := QueryHandler{
		eventStore: eventStore,
	}

	for _, opt := range opts {
		if err := opt(&h); err != nil {
			return QueryHandler{}, err
		}
	}

	return h, nil
}

// Handle executes the query processing workflow.
func (h QueryHandler) Handle(ctx context.Context) (CatalogBooks, error) {
	start := time.Now()

	if h.contextualLogger != nil {
		h.contextualLogger.DebugContext(ctx, shell.LogMsgQueryStarted, shell.LogAttrQueryType, queryType)
	}

	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, _, err := h.eventStore.Query(ctx, BuildEventFilter())
	if err != nil {
		return CatalogBooks{}, h.fail(ctx, err, start)
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return CatalogBooks{}, h.fail(ctx, err, start)
	}

	result := Project(history)

	shell.RecordQueryMetrics(ctx, h.metricsCollector, queryType, shell.StatusSuccess, time.Since(start))
	if h.contextualLogger != nil {
		h.contextualLogger.DebugContext(ctx, shell.LogMsgQueryCompleted,
			shell.LogAttrQueryType, queryType,
			shell.LogAttrDurationMS, shell.ToMilliseconds(time.Since(start)))
	}

	return result, nil
}

func (h QueryHandler) fail(ctx context.Context, err error, start time.Time) error {
	shell.RecordQueryMetrics(ctx, h.metricsCollector, queryType, shell.StatusError, time.Since(start))
	if h.contextualLogger != nil {
		h.contextualLogger.ErrorContext(ctx, shell.LogMsgQueryFailed,
			shell.LogAttrQueryType, queryType,
			shell.LogAttrError, err.Error())
	}

	return err
}
