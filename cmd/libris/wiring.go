package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"

	"github.com/libris-app/libris/eventstore/postgresengine"
	"github.com/libris-app/libris/features/command/addauthor"
	"github.com/libris-app/libris/features/command/addbook"
	"github.com/libris-app/libris/features/command/borrowbook"
	"github.com/libris-app/libris/features/command/editauthor"
	"github.com/libris-app/libris/features/command/editbook"
	"github.com/libris-app/libris/features/command/editmember"
	"github.com/libris-app/libris/features/command/registermember"
	"github.com/libris-app/libris/features/command/removeauthor"
	"github.com/libris-app/libris/features/command/removebook"
	"github.com/libris-app/libris/features/command/removemember"
	"github.com/libris-app/libris/features/command/returnbook"
	"github.com/libris-app/libris/features/query/activeloans"
	"github.com/libris-app/libris/features/query/authors"
	"github.com/libris-app/libris/features/query/catalogbooks"
	"github.com/libris-app/libris/features/query/loanhistory"
	"github.com/libris-app/libris/features/query/memberborrows"
	"github.com/libris-app/libris/features/query/members"
	"github.com/libris-app/libris/httpapi"
	"github.com/libris-app/libris/oteladapters"
	"github.com/libris-app/libris/shell"
	"github.com/libris-app/libris/shell/config"
)

const meterName = "libris"

// app bundles the shared infrastructure of the CLI commands.
type app struct {
	cfg              config.Config
	logger           *slog.Logger
	pool             *pgxpool.Pool
	replicaPool      *pgxpool.Pool
	eventStore       postgresengine.EventStore
	providers        *config.ObservabilityProviders
	metricsCollector *oteladapters.MetricsCollector
	contextualLogger *oteladapters.SlogBridgeLogger
}

// newApp loads the configuration and opens the connections the CLI
// commands share. Callers must close the returned app.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	var providers *config.ObservabilityProviders
	if cfg.OTLPEndpoint != "" {
		providers, err = config.NewObservabilityProviders(cfg.ServiceName, cfg.OTLPEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init observability: %w", err)
		}
	}

	pool, err := config.OpenPGXPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	var replicaPool *pgxpool.Pool
	if cfg.ReplicaDSN != "" {
		replicaPool, err = config.OpenPGXPool(ctx, cfg.ReplicaDSN)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("open replica pool: %w", err)
		}
	}

	storeOptions := []postgresengine.Option{
		postgresengine.WithTableName(cfg.EventsTableName),
		postgresengine.WithLogger(logger),
	}

	var eventStore postgresengine.EventStore
	if replicaPool != nil {
		eventStore, err = postgresengine.NewEventStoreFromPGXPoolWithReplica(pool, replicaPool, storeOptions...)
	} else {
		eventStore, err = postgresengine.NewEventStoreFromPGXPool(pool, storeOptions...)
	}

	if err != nil {
		pool.Close()
		if replicaPool != nil {
			replicaPool.Close()
		}

		return nil, fmt.Errorf("init event store: %w", err)
	}

	return &app{
		cfg:              cfg,
		logger:           logger,
		pool:             pool,
		replicaPool:      replicaPool,
		eventStore:       eventStore,
		providers:        providers,
		metricsCollector: oteladapters.NewMetricsCollector(otel.Meter(meterName)),
		contextualLogger: oteladapters.NewSlogBridgeLoggerWithHandler(handler),
	}, nil
}

func (a *app) close() {
	a.pool.Close()

	if a.replicaPool != nil {
		a.replicaPool.Close()
	}

	if a.providers != nil {
		if err := a.providers.Shutdown(); err != nil {
			a.logger.Warn("observability shutdown failed", "error", err)
		}
	}
}

// buildDependencies wires all command and query handlers against the
// event store. Hub and Pinger are left for the caller to fill in.
func (a *app) buildDependencies() (httpapi.Dependencies, error) {
	es := a.eventStore

	withRetryMetrics := func(commandType string) shell.RetryOption {
		return shell.WithMetrics(a.metricsCollector, commandType)
	}

	var collector shell.MetricsCollector = a.metricsCollector

	var ctxLogger shell.ContextualLogger = a.contextualLogger

	listAuthors, err := authors.NewQueryHandler(es,
		authors.WithMetricsCollector(collector), authors.WithContextualLogger(ctxLogger))
	if err != nil {
		return httpapi.Dependencies{}, err
	}

	catalog, err := catalogbooks.NewQueryHandler(es,
		catalogbooks.WithMetricsCollector(collector), catalogbooks.WithContextualLogger(ctxLogger))
	if err != nil {
		return httpapi.Dependencies{}, err
	}

	listMembers, err := members.NewQueryHandler(es,
		members.WithMetricsCollector(collector), members.WithContextualLogger(ctxLogger))
	if err != nil {
		return httpapi.Dependencies{}, err
	}

	openLoans, err := activeloans.NewQueryHandler(es,
		activeloans.WithMetricsCollector(collector), activeloans.WithContextualLogger(ctxLogger))
	if err != nil {
		return httpapi.Dependencies{}, err
	}

	history, err := loanhistory.NewQueryHandler(es,
		loanhistory.WithMetricsCollector(collector), loanhistory.WithContextualLogger(ctxLogger))
	if err != nil {
		return httpapi.Dependencies{}, err
	}

	borrows, err := memberborrows.NewQueryHandler(es,
		memberborrows.WithMetricsCollector(collector), memberborrows.WithContextualLogger(ctxLogger))
	if err != nil {
		return httpapi.Dependencies{}, err
	}

	return httpapi.Dependencies{
		AddAuthor: addauthor.NewCommandHandler(es,
			addauthor.WithRetryOptions(withRetryMetrics("AddAuthor"))),
		EditAuthor: editauthor.NewCommandHandler(es,
			editauthor.WithRetryOptions(withRetryMetrics("EditAuthor"))),
		RemoveAuthor: removeauthor.NewCommandHandler(es,
			removeauthor.WithRetryOptions(withRetryMetrics("RemoveAuthor"))),
		AddBook: addbook.NewCommandHandler(es,
			addbook.WithRetryOptions(withRetryMetrics("AddBook"))),
		EditBook: editbook.NewCommandHandler(es,
			editbook.WithRetryOptions(withRetryMetrics("EditBook"))),
		RemoveBook: removebook.NewCommandHandler(es,
			removebook.WithRetryOptions(withRetryMetrics("RemoveBook"))),
		RegisterMember: registermember.NewCommandHandler(es,
			registermember.WithRetryOptions(withRetryMetrics("RegisterMember"))),
		EditMember: editmember.NewCommandHandler(es,
			editmember.WithRetryOptions(withRetryMetrics("EditMember"))),
		RemoveMember: removemember.NewCommandHandler(es,
			removemember.WithRetryOptions(withRetryMetrics("RemoveMember"))),
		BorrowBook: borrowbook.NewCommandHandler(es,
			borrowbook.WithRetryOptions(withRetryMetrics("BorrowBook"))),
		ReturnBook: returnbook.NewCommandHandler(es,
			returnbook.WithRetryOptions(withRetryMetrics("ReturnBook"))),

		ListAuthors:   listAuthors,
		CatalogBooks:  catalog,
		ListMembers:   listMembers,
		ActiveLoans:   openLoans,
		LoanHistory:   history,
		MemberBorrows: borrows,
	}, nil
}
