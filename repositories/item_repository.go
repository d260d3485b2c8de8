package repositories

import (
	"errors"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	FindAll() ([]models.Item, error)
	FindByUserID(userID uint) ([]models.Item, error)
	FindByID(itemID uint) (*models.Item, error)
	Create(newItem *models.Item) error
	Update(itemID uint, updates map[string]interface{}) (*models.Item, error)
	Delete(itemID uint) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

// FindAll returns every item, most recently created first. Listing
// order is established here, not by the filter pass downstream.
func (r *ItemRepository) FindAll() ([]models.Item, error) {
	var items []models.Item
	result := r.db.Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *ItemRepository) FindByUserID(userID uint) ([]models.Item, error) {
	var items []models.Item
	result := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *ItemRepository) FindByID(itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) Create(newItem *models.Item) error {
	return r.db.Create(newItem).Error
}

// Update applies the given columns in a single statement. A zero
// RowsAffected means the row vanished between the caller's ownership
// check and the write; that surfaces as not-found, not a fault.
func (r *ItemRepository) Update(itemID uint, updates map[string]interface{}) (*models.Item, error) {
	result := r.db.Model(&models.Item{}).
		Where("id = ?", itemID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrItemNotFound
	}

	var updatedItem models.Item
	if err := r.db.First(&updatedItem, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}
	return &updatedItem, nil
}

func (r *ItemRepository) Delete(itemID uint) error {
	result := r.db.Delete(&models.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}
