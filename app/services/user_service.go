package services

import (
	"fmt"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(f repositories.UserFilter) ([]models.User, database.Pagination, error) {
	return s.users.List(f)
}

func (s *UserService) Find(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

// Suspend blocks an account from logging in. Admin accounts cannot be
// suspended.
func (s *UserService) Suspend(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return nil, ErrAdminImmutable
	}

	user.Status = models.UserSuspended
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("users: suspend: %w", err)
	}

	logger.Info("users: suspended", "user_id", user.ID)
	return user, nil
}

// Activate lifts a suspension.
func (s *UserService) Activate(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.Status = models.UserActive
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("users: activate: %w", err)
	}
	return user, nil
}

// Delete removes an account. Admin accounts cannot be deleted.
func (s *UserService) Delete(id uint) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return ErrAdminImmutable
	}

	if err := s.users.Delete(id); err != nil {
		return fmt.Errorf("users: delete: %w", err)
	}

	logger.Info("users: deleted", "user_id", id)
	return nil
}
