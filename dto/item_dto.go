package dto

import "github.com/sankalpa008/lost-and-found/models"

type CreateItemInput struct {
	Title         string            `json:"title" binding:"required,min=1"`
	Description   string            `json:"description" binding:"required,min=1"`
	Category      models.Category   `json:"category" binding:"required"`
	Status        models.ItemStatus `json:"status" binding:"required"`
	Location      string            `json:"location" binding:"required,min=1"`
	ContactNumber string            `json:"contactNumber" binding:"required,min=1"`
	ImageURL      string            `json:"imageUrl"`
}

type UpdateItemInput struct {
	Title         *string            `json:"title" binding:"omitnil,min=1"`
	Description   *string            `json:"description" binding:"omitnil,min=1"`
	Category      *models.Category   `json:"category"`
	Status        *models.ItemStatus `json:"status"`
	Location      *string            `json:"location" binding:"omitnil,min=1"`
	ContactNumber *string            `json:"contactNumber" binding:"omitnil,min=1"`
	ImageURL      *string            `json:"imageUrl"`
}

type ResolveItemInput struct {
	Resolved *bool `json:"resolved" binding:"required"`
}

// RecencyWindow buckets items by whole days elapsed since creation.
type RecencyWindow string

const (
	RecencyToday  RecencyWindow = "today"
	RecencyWeek   RecencyWindow = "7d"
	RecencyMonth  RecencyWindow = "30d"
	RecencyNinety RecencyWindow = "90d"
)

// MaxDays returns the inclusive upper bound for the bucket, or false
// for an unknown window.
func (w RecencyWindow) MaxDays() (int, bool) {
	switch w {
	case RecencyToday:
		return 0, true
	case RecencyWeek:
		return 7, true
	case RecencyMonth:
		return 30, true
	case RecencyNinety:
		return 90, true
	}
	return 0, false
}

// ItemFilter is the optional-criteria record for listing items. Nil
// fields mean "no constraint"; set fields are AND-combined.
type ItemFilter struct {
	Search       string
	Category     *models.Category
	Status       *models.ItemStatus
	Resolved     *bool
	PostedWithin *RecencyWindow
}

func (f ItemFilter) Empty() bool {
	return f.Search == "" && f.Category == nil && f.Status == nil &&
		f.Resolved == nil && f.PostedWithin == nil
}
