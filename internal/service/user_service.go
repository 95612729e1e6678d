// Package service holds the business rules sitting between handlers and repositories.
package service

import (
	"context"
	"errors"
	"strings"

	"kindling/internal/models"
	"kindling/internal/repository"

	"gorm.io/gorm"
)

// UserService implements the find-or-create-user protocol.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// FindOrCreate returns the existing user with the given username, creating
// one on a miss. The lookup-then-insert sequence is not serialized: two
// concurrent calls with the same brand-new username can both miss and both
// insert, so callers must tolerate duplicate usernames.
func (s *UserService) FindOrCreate(ctx context.Context, username string) (*models.User, error) {
	trimmed := strings.TrimSpace(username)

	user, err := s.userRepo.GetByUsername(ctx, trimmed)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{Username: trimmed}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
