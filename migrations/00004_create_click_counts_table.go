package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateClickCountsTable, downCreateClickCountsTable)
}

func upCreateClickCountsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE click_counts (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	  moisturizer_count INTEGER NOT NULL DEFAULT 0,
	  cleanser_count INTEGER NOT NULL DEFAULT 0,
	  treatment_count INTEGER NOT NULL DEFAULT 0,
	  face_mask_count INTEGER NOT NULL DEFAULT 0,
	  eye_cream_count INTEGER NOT NULL DEFAULT 0,
	  sun_protect_count INTEGER NOT NULL DEFAULT 0,
	  combination_count INTEGER NOT NULL DEFAULT 0,
	  dry_count INTEGER NOT NULL DEFAULT 0,
	  normal_count INTEGER NOT NULL DEFAULT 0,
	  oily_count INTEGER NOT NULL DEFAULT 0,
	  sensitive_count INTEGER NOT NULL DEFAULT 0
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateClickCountsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS click_counts;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
