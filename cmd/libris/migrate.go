package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libris-app/libris/shell/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the events table and its indexes",
	RunE:  runMigrate,
}

// The GIN index with jsonb_path_ops serves the payload containment
// predicates of the dynamic stream filters.
const eventsTableDDL = `
CREATE TABLE IF NOT EXISTS %[1]s (
	sequence_number BIGSERIAL PRIMARY KEY,
	event_type      TEXT        NOT NULL,
	occurred_at     TIMESTAMPTZ NOT NULL,
	payload         JSONB       NOT NULL,
	metadata        JSONB
);

CREATE INDEX IF NOT EXISTS idx_%[1]s_event_type  ON %[1]s (event_type);
CREATE INDEX IF NOT EXISTS idx_%[1]s_occurred_at ON %[1]s (occurred_at);
CREATE INDEX IF NOT EXISTS idx_%[1]s_payload     ON %[1]s USING GIN (payload jsonb_path_ops);
`

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := config.OpenPGXPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err = pool.Exec(ctx, fmt.Sprintf(eventsTableDDL, cfg.EventsTableName)); err != nil {
		return fmt.Errorf("apply events table DDL: %w", err)
	}

	fmt.Printf("events table %q is ready\n", cfg.EventsTableName)

	return nil
}
