package services

import (
	"context"

	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"
)

type UserService interface {
	Me(ctx context.Context, userID string) (*models.User, error)
}

type userService struct {
	userRepo interfaces.UserRepository
}

func NewUserService(userRepo interfaces.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
