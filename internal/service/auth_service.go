package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/events"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/jwt"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/model"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	RegisterUser(ctx context.Context, username, email, password string) (*model.User, string, error)
	LoginUser(ctx context.Context, email, password string) (*model.User, string, error)
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	publisher events.EventPublisher
}

func NewAuthService(userRepo repository.UserRepository, publisher events.EventPublisher) AuthService {
	return &authService{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *authService) RegisterUser(ctx context.Context, username, email, password string) (*model.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	newID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	user.ID = newID

	token, err := jwt.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	if s.publisher != nil {
		go s.publisher.PublishUserRegistered(user)
	}

	return user, token, nil
}

func (s *authService) LoginUser(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) GetUserProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
