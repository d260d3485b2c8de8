package services

import (
	"errors"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/repositories"

	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(email string, password string, name string) (*models.User, string, error)
	Login(email string, password string) (*models.User, string, error)
	Logout(token string) error
	GetUserFromSession(token string) (*models.User, error)
}

type AuthService struct {
	userRepository repositories.IUserRepository
	sessionService ISessionService
}

func NewAuthService(userRepository repositories.IUserRepository, sessionService ISessionService) IAuthService {
	return &AuthService{
		userRepository: userRepository,
		sessionService: sessionService,
	}
}

// Signup creates a STUDENT account and signs it in immediately.
func (s *AuthService) Signup(email string, password string, name string) (*models.User, string, error) {
	existing, err := s.userRepository.FindByEmail(email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		Role:     models.RoleStudent,
	}
	if err := s.userRepository.Create(&user); err != nil {
		return nil, "", err
	}

	token, err := s.sessionService.Create(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and issues a session. Unknown email and
// wrong password report the same failure so neither confirms an
// account exists.
func (s *AuthService) Login(email string, password string) (*models.User, string, error) {
	user, err := s.userRepository.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessionService.Create(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Logout(token string) error {
	return s.sessionService.Destroy(token)
}

// GetUserFromSession resolves a token to the full current-user record.
// A session whose owning user has been deleted is no session at all.
func (s *AuthService) GetUserFromSession(token string) (*models.User, error) {
	userID, err := s.sessionService.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.FindByID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrNoSession
		}
		return nil, err
	}
	return user, nil
}
