package services

import (
	"fmt"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/auth"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user account and returns it with a session token.
// New accounts always get the user role; admins come from the seeder.
func (s *AuthService) Register(name, email, password string) (*models.User, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("auth: hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
		Status:   models.UserActive,
	}
	if err := s.users.Create(user); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("auth: create user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("auth: issue token: %w", err)
	}

	logger.Info("auth: user registered", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// Login checks credentials and returns the user with a fresh token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("auth: lookup user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	if user.Status == models.UserSuspended {
		return nil, "", ErrAccountSuspended
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("auth: issue token: %w", err)
	}

	logger.Info("auth: user logged in", "user_id", user.ID)
	return user, token, nil
}

// Me returns the account for an authenticated user id.
func (s *AuthService) Me(userID uint) (*models.User, error) {
	return s.users.FindByID(userID)
}
