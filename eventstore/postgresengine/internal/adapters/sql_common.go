package adapters

import (
	"database/sql"
)

// sqlRows wraps *sql.Rows to implement the DBRows interface.
// Shared by the database/sql and sqlx adapters, which produce the same row type.
type sqlRows struct {
	rows *sql.Rows
}

func (s *sqlRows) Next() bool {
	return s.rows.Next()
}

func (s *sqlRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

func (s *sqlRows) Close() error {
	return s.rows.Close()
}

// sqlResult wraps sql.Result to implement the DBResult interface.
type sqlResult struct {
	result sql.Result
}

func (s *sqlResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}
