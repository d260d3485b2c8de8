package repositories

import (
	"errors"
	"time"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/models"

	"gorm.io/gorm"
)

type ISessionRepository interface {
	Create(session *models.Session) error
	FindByToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
	DeleteExpired(now time.Time) error
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) ISessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepository) FindByToken(token string) (*models.Session, error) {
	var session models.Session
	result := r.db.First(&session, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoSession
		}
		return nil, result.Error
	}
	return &session, nil
}

// DeleteByToken is idempotent: deleting an absent token succeeds.
func (r *SessionRepository) DeleteByToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

func (r *SessionRepository) DeleteExpired(now time.Time) error {
	return r.db.Where("expires_at < ?", now).Delete(&models.Session{}).Error
}
