package services

import (
	"log"
	"time"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/dto"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/repositories"
)

// ImageStore is the slice of the image collaborator the item service
// needs: removing a stored image by its opaque reference.
type ImageStore interface {
	Delete(imageURL string) error
}

type IItemService interface {
	Search(filter dto.ItemFilter) ([]models.Item, error)
	FindAll() ([]models.Item, error)
	FindByUser(userID uint) ([]models.Item, error)
	FindByID(itemID uint) (*models.Item, error)
	Create(input dto.CreateItemInput, userID uint) (*models.Item, error)
	Update(itemID uint, user *models.User, input dto.UpdateItemInput) (*models.Item, error)
	Delete(itemID uint, user *models.User) error
	SetResolved(itemID uint, user *models.User, resolved bool) (*models.Item, error)
}

type ItemService struct {
	repository repositories.IItemRepository
	images     ImageStore
}

func NewItemService(repository repositories.IItemRepository, images ImageStore) IItemService {
	return &ItemService{repository: repository, images: images}
}

// Search fetches all items newest-first and applies the filter pass in
// memory, with a single sampled now for the recency bucket.
func (s *ItemService) Search(filter dto.ItemFilter) ([]models.Item, error) {
	items, err := s.repository.FindAll()
	if err != nil {
		return nil, err
	}
	return FilterItems(items, filter, time.Now()), nil
}

func (s *ItemService) FindAll() ([]models.Item, error) {
	return s.repository.FindAll()
}

func (s *ItemService) FindByUser(userID uint) ([]models.Item, error) {
	return s.repository.FindByUserID(userID)
}

func (s *ItemService) FindByID(itemID uint) (*models.Item, error) {
	return s.repository.FindByID(itemID)
}

// Create is open to any authenticated user; the item is always owned
// by the creator.
func (s *ItemService) Create(input dto.CreateItemInput, userID uint) (*models.Item, error) {
	newItem := models.Item{
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Status:        input.Status,
		Location:      input.Location,
		ContactNumber: input.ContactNumber,
		ImageURL:      input.ImageURL,
		IsResolved:    false,
		UserID:        userID,
	}
	if err := s.repository.Create(&newItem); err != nil {
		return nil, err
	}
	return &newItem, nil
}

func (s *ItemService) Update(itemID uint, user *models.User, input dto.UpdateItemInput) (*models.Item, error) {
	targetItem, err := s.repository.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if !canModify(targetItem, user) {
		return nil, apperrors.ErrUnauthorized
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.ContactNumber != nil {
		updates["contact_number"] = *input.ContactNumber
	}
	if input.ImageURL != nil && *input.ImageURL != "" {
		updates["image_url"] = *input.ImageURL
	}
	if len(updates) == 0 {
		return targetItem, nil
	}

	return s.repository.Update(itemID, updates)
}

func (s *ItemService) Delete(itemID uint, user *models.User) error {
	targetItem, err := s.repository.FindByID(itemID)
	if err != nil {
		return err
	}
	if !canModify(targetItem, user) {
		return apperrors.ErrUnauthorized
	}

	if err := s.repository.Delete(itemID); err != nil {
		return err
	}

	// Best effort; a leftover file is not worth failing the delete.
	if s.images != nil && targetItem.ImageURL != "" {
		if err := s.images.Delete(targetItem.ImageURL); err != nil {
			log.Printf("Failed to delete image %s: %v", targetItem.ImageURL, err)
		}
	}
	return nil
}

func (s *ItemService) SetResolved(itemID uint, user *models.User, resolved bool) (*models.Item, error) {
	targetItem, err := s.repository.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if !canModify(targetItem, user) {
		return nil, apperrors.ErrUnauthorized
	}

	return s.repository.Update(itemID, map[string]interface{}{"is_resolved": resolved})
}

// canModify is the ownership rule, re-evaluated on every mutation
// against the freshly fetched record.
func canModify(item *models.Item, user *models.User) bool {
	return item.UserID == user.ID || user.IsAdmin()
}
