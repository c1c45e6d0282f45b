package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
	repo "github.com/gilanggnw/Cosmetics-Recommendation/internal/repository"
)

var pgUniqueViolation = pgconn.PgError{
	Code:    "23505",
	Message: "duplicate key value violates unique constraint",
}

func TestPostgresSearchHistoryRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresSearchHistoryRepository(sqlxDB)

	id := uuid.New()
	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO search_history (user_id, search_query) VALUES ($1, $2) RETURNING id`)).
		WithArgs(userID, "retinol").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	nid, err := r.Create(context.Background(), &model.SearchHistory{UserID: userID, SearchQuery: "retinol"})
	require.NoError(t, err)
	require.Equal(t, id, nid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSearchHistoryRepository_Create_DuplicatesAllowed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresSearchHistoryRepository(sqlxDB)

	userID := uuid.New()
	insert := regexp.QuoteMeta(`INSERT INTO search_history (user_id, search_query) VALUES ($1, $2) RETURNING id`)

	first := uuid.New()
	second := uuid.New()
	mock.ExpectQuery(insert).WithArgs(userID, "retinol").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(first))
	mock.ExpectQuery(insert).WithArgs(userID, "retinol").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(second))

	id1, err := r.Create(context.Background(), &model.SearchHistory{UserID: userID, SearchQuery: "retinol"})
	require.NoError(t, err)
	id2, err := r.Create(context.Background(), &model.SearchHistory{UserID: userID, SearchQuery: "retinol"})
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSearchHistoryRepository_ListByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresSearchHistoryRepository(sqlxDB)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "search_query", "search_timestamp"}).
		AddRow(uuid.New(), userID, "retinol", time.Now()).
		AddRow(uuid.New(), userID, "niacinamide", time.Now())

	mock.ExpectQuery(`SELECT id, user_id, search_query, search_timestamp`).
		WithArgs(userID).WillReturnRows(rows)

	entries, err := r.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "retinol", entries[0].SearchQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookmarkRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresBookmarkRepository(sqlxDB)

	id := uuid.New()
	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookmarks (user_id, product_id) VALUES ($1, $2) RETURNING id`)).
		WithArgs(userID, 42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	nid, err := r.Create(context.Background(), &model.Bookmark{UserID: userID, ProductID: 42})
	require.NoError(t, err)
	require.Equal(t, id, nid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookmarkRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresBookmarkRepository(sqlxDB)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookmarks (user_id, product_id) VALUES ($1, $2) RETURNING id`)).
		WithArgs(userID, 42).
		WillReturnError(&pgUniqueViolation)

	_, err = r.Create(context.Background(), &model.Bookmark{UserID: userID, ProductID: 42})
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	require.Equal(t, "23505", pgErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresBookmarkRepository_ListByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresBookmarkRepository(sqlxDB)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "created_at"}).
		AddRow(uuid.New(), userID, 42, time.Now())

	mock.ExpectQuery(`SELECT id, user_id, product_id, created_at`).
		WithArgs(userID).WillReturnRows(rows)

	bookmarks, err := r.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	require.Equal(t, 42, bookmarks[0].ProductID)
	require.NoError(t, mock.ExpectationsWereMet())
}
