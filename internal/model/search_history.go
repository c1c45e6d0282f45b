package model

import (
	"time"

	"github.com/google/uuid"
)

type SearchHistory struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	SearchQuery     string    `db:"search_query"`
	SearchTimestamp time.Time `db:"search_timestamp"`
}
