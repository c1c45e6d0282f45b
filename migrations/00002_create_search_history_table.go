package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSearchHistoryTable, downCreateSearchHistoryTable)
}

func upCreateSearchHistoryTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE search_history (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	  search_query TEXT NOT NULL,
	  search_timestamp TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_search_history_user_id ON search_history(user_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateSearchHistoryTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS search_history;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
