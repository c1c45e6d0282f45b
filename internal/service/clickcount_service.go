package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/repository"
)

var (
	ErrUnknownFilter   = errors.New("unknown filter type")
	ErrCounterNotFound = errors.New("no click counts recorded for user")
)

type ClickCountService interface {
	Increment(ctx context.Context, userID uuid.UUID, filterType string) (int, error)
	GetCounts(ctx context.Context, userID uuid.UUID) (*model.ClickCount, error)
}

type clickCountService struct {
	clickRepo repository.ClickCountRepository
}

func NewClickCountService(clickRepo repository.ClickCountRepository) ClickCountService {
	return &clickCountService{clickRepo: clickRepo}
}

// Increment resolves the filter label to its counter column before touching
// the database, so an unknown label never creates a row.
func (s *clickCountService) Increment(ctx context.Context, userID uuid.UUID, filterType string) (int, error) {
	column, ok := model.CounterColumn(filterType)
	if !ok {
		return 0, ErrUnknownFilter
	}

	return s.clickRepo.Increment(ctx, userID, column)
}

func (s *clickCountService) GetCounts(ctx context.Context, userID uuid.UUID) (*model.ClickCount, error) {
	counts, err := s.clickRepo.FindByUserID(ctx, userID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCounterNotFound
		}
		return nil, err
	}

	return counts, nil
}
