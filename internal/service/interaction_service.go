package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/events"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/repository"
)

var ErrEmptySearchQuery = errors.New("search query must not be empty")

type InteractionService interface {
	RecordSearch(ctx context.Context, userID uuid.UUID, query string) (uuid.UUID, error)
	ListSearchHistory(ctx context.Context, userID uuid.UUID) ([]model.SearchHistory, error)
	AddBookmark(ctx context.Context, userID uuid.UUID, productID int) (uuid.UUID, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error)
}

type interactionService struct {
	searchRepo   repository.SearchHistoryRepository
	bookmarkRepo repository.BookmarkRepository
	publisher    events.EventPublisher
}

func NewInteractionService(searchRepo repository.SearchHistoryRepository, bookmarkRepo repository.BookmarkRepository, publisher events.EventPublisher) InteractionService {
	return &interactionService{
		searchRepo:   searchRepo,
		bookmarkRepo: bookmarkRepo,
		publisher:    publisher,
	}
}

func (s *interactionService) RecordSearch(ctx context.Context, userID uuid.UUID, query string) (uuid.UUID, error) {
	if strings.TrimSpace(query) == "" {
		return uuid.Nil, ErrEmptySearchQuery
	}

	entry := &model.SearchHistory{
		UserID:      userID,
		SearchQuery: query,
	}

	newID, err := s.searchRepo.Create(ctx, entry)
	if err != nil {
		return uuid.Nil, err
	}

	if s.publisher != nil {
		go s.publisher.PublishSearchRecorded(userID, query)
	}

	return newID, nil
}

func (s *interactionService) ListSearchHistory(ctx context.Context, userID uuid.UUID) ([]model.SearchHistory, error) {
	return s.searchRepo.ListByUserID(ctx, userID)
}

func (s *interactionService) AddBookmark(ctx context.Context, userID uuid.UUID, productID int) (uuid.UUID, error) {
	bookmark := &model.Bookmark{
		UserID:    userID,
		ProductID: productID,
	}

	newID, err := s.bookmarkRepo.Create(ctx, bookmark)
	if err != nil {
		return uuid.Nil, err
	}

	if s.publisher != nil {
		go s.publisher.PublishBookmarkAdded(userID, productID)
	}

	return newID, nil
}

func (s *interactionService) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]model.Bookmark, error) {
	return s.bookmarkRepo.ListByUserID(ctx, userID)
}
