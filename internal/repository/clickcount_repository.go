package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
)

type ClickCountRepository interface {
	Increment(ctx context.Context, userID uuid.UUID, column string) (int, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.ClickCount, error)
}

type postgresClickCountRepository struct {
	db *sqlx.DB
}

func NewPostgresClickCountRepository(db *sqlx.DB) ClickCountRepository {
	return &postgresClickCountRepository{db: db}
}

// Increment bumps one counter column by 1 and returns the new value. The row
// is created on first use; concurrent increments for the same user are safe
// because the whole read-modify-write happens inside the upsert. The column
// argument must come from model.CounterColumn, never from client input.
func (r *postgresClickCountRepository) Increment(ctx context.Context, userID uuid.UUID, column string) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO click_counts (user_id, %[1]s) VALUES ($1, 1)
		ON CONFLICT (user_id) DO UPDATE SET %[1]s = click_counts.%[1]s + 1
		RETURNING %[1]s
	`, column)

	var newCount int
	err := r.db.QueryRowxContext(ctx, query, userID).Scan(&newCount)

	if err != nil {
		return 0, err
	}

	return newCount, nil
}

func (r *postgresClickCountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.ClickCount, error) {
	var counts model.ClickCount
	query := `SELECT * FROM click_counts WHERE user_id = $1`
	err := r.db.GetContext(ctx, &counts, query, userID)

	if err != nil {
		return nil, err
	}

	return &counts, nil
}
