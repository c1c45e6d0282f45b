package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
)

type SearchHistoryRepository interface {
	Create(ctx context.Context, entry *model.SearchHistory) (uuid.UUID, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.SearchHistory, error)
}

type postgresSearchHistoryRepository struct {
	db *sqlx.DB
}

func NewPostgresSearchHistoryRepository(db *sqlx.DB) SearchHistoryRepository {
	return &postgresSearchHistoryRepository{db: db}
}

func (r *postgresSearchHistoryRepository) Create(ctx context.Context, entry *model.SearchHistory) (uuid.UUID, error) {
	query := `INSERT INTO search_history (user_id, search_query) VALUES ($1, $2) RETURNING id`
	var newID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, entry.UserID, entry.SearchQuery).Scan(&newID)

	if err != nil {
		return uuid.Nil, err
	}

	return newID, nil
}

func (r *postgresSearchHistoryRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.SearchHistory, error) {
	entries := []model.SearchHistory{}
	query := `
		SELECT id, user_id, search_query, search_timestamp
		FROM search_history
		WHERE user_id = $1
		ORDER BY search_timestamp DESC
	`
	err := r.db.SelectContext(ctx, &entries, query, userID)

	if err != nil {
		return nil, err
	}

	return entries, nil
}
