package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
)

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *model.Bookmark) (uuid.UUID, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error)
}

type postgresBookmarkRepository struct {
	db *sqlx.DB
}

func NewPostgresBookmarkRepository(db *sqlx.DB) BookmarkRepository {
	return &postgresBookmarkRepository{db: db}
}

func (r *postgresBookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) (uuid.UUID, error) {
	query := `INSERT INTO bookmarks (user_id, product_id) VALUES ($1, $2) RETURNING id`
	var newID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, bookmark.UserID, bookmark.ProductID).Scan(&newID)

	if err != nil {
		return uuid.Nil, err
	}

	return newID, nil
}

func (r *postgresBookmarkRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error) {
	bookmarks := []model.Bookmark{}
	query := `
		SELECT id, user_id, product_id, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &bookmarks, query, userID)

	if err != nil {
		return nil, err
	}

	return bookmarks, nil
}
