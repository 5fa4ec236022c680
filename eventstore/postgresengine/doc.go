// Package postgresengine implements the dynamic event stream store on
// Postgres, on top of pgxpool, database/sql (lib/pq), or sqlx.
//
// Appends are conditional single-statement inserts: a CTE re-computes the
// stream's max sequence number under the same filter used by the preceding
// Query, and the insert only happens when it still matches the expected
// value. Zero rows affected means another writer got there first and is
// reported as eventstore.ErrConcurrencyConflict.
package postgresengine
