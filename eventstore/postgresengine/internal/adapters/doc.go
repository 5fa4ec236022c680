// Package adapters contains thin wrappers that let the Postgres engine run on
// top of pgxpool, database/sql, or sqlx through one DBAdapter interface.
package adapters
