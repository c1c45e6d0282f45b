package model

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ProductID int       `db:"product_id"`
	CreatedAt time.Time `db:"created_at"`
}
