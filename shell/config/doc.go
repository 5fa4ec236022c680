// Package config provides environment-driven configuration for the service:
// the application settings loaded from the environment (optionally via a .env
// file), factory functions for PostgreSQL connections using the supported
// drivers (pgx pool, sql.DB, sqlx.DB), and the OpenTelemetry provider setup.
package config
