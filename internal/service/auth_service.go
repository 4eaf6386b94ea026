package service

import (
	"errors"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(email, password string) (string, *model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, errors.New("account is deactivated")
	}
	if !user.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
