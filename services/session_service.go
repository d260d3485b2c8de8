package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/constants"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/repositories"
)

type ISessionService interface {
	Create(userID uint) (string, error)
	Validate(token string) (uint, error)
	Destroy(token string) error
}

type SessionService struct {
	repository repositories.ISessionRepository
}

func NewSessionService(repository repositories.ISessionRepository) ISessionService {
	return &SessionService{repository: repository}
}

// Create issues a fresh opaque token for the user. The token carries no
// claims; its only meaning is the store row mapping it to a user id and
// an expiry.
func (s *SessionService) Create(userID uint) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	session := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(constants.SessionTTL),
	}
	if err := s.repository.Create(&session); err != nil {
		return "", err
	}
	return token, nil
}

// Validate resolves a token to its user id. An empty, unknown, or
// expired token is ErrNoSession. Expiry is never extended; expired rows
// are removed on the way out.
func (s *SessionService) Validate(token string) (uint, error) {
	if token == "" {
		return 0, apperrors.ErrNoSession
	}

	session, err := s.repository.FindByToken(token)
	if err != nil {
		return 0, err
	}

	if session.Expired(time.Now()) {
		if err := s.repository.DeleteByToken(token); err != nil {
			return 0, err
		}
		return 0, apperrors.ErrNoSession
	}

	return session.UserID, nil
}

// Destroy removes the session if present. Destroying an already
// destroyed token succeeds.
func (s *SessionService) Destroy(token string) error {
	if token == "" {
		return nil
	}
	return s.repository.DeleteByToken(token)
}

func generateToken() (string, error) {
	buf := make([]byte, constants.SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
