package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBookmarksTable, downCreateBookmarksTable)
}

func upCreateBookmarksTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE bookmarks (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	  product_id INTEGER NOT NULL,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  UNIQUE (user_id, product_id)
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateBookmarksTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS bookmarks;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
