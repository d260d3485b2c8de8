package services

import (
	"errors"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/dto"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/repositories"

	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	ListUsers() ([]dto.UserWithItemCount, error)
	DeleteUser(userID uint) error
	CreateUser(email string, password string, name string, role models.Role) (*models.User, error)
}

type AdminService struct {
	userRepository repositories.IUserRepository
}

func NewAdminService(userRepository repositories.IUserRepository) IAdminService {
	return &AdminService{userRepository: userRepository}
}

func (s *AdminService) ListUsers() ([]dto.UserWithItemCount, error) {
	return s.userRepository.FindAllWithItemCount()
}

// DeleteUser cascades over the user's sessions and items; afterwards
// no session for that user validates and no item of theirs remains.
func (s *AdminService) DeleteUser(userID uint) error {
	return s.userRepository.Delete(userID)
}

// CreateUser is the admin-initiated account creation, for either role.
// Role elevation only ever happens through this path.
func (s *AdminService) CreateUser(email string, password string, name string, role models.Role) (*models.User, error) {
	existing, err := s.userRepository.FindByEmail(email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		Role:     role,
	}
	if err := s.userRepository.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
