package models

import "gorm.io/gorm"

type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryBooks       Category = "BOOKS"
	CategoryClothing    Category = "CLOTHING"
	CategoryAccessories Category = "ACCESSORIES"
	CategoryDocuments   Category = "DOCUMENTS"
	CategoryKeys        Category = "KEYS"
	CategoryBags        Category = "BAGS"
	CategorySports      Category = "SPORTS"
	CategoryOther       Category = "OTHER"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryBooks, CategoryClothing,
		CategoryAccessories, CategoryDocuments, CategoryKeys,
		CategoryBags, CategorySports, CategoryOther:
		return true
	}
	return false
}

type ItemStatus string

const (
	StatusLost  ItemStatus = "LOST"
	StatusFound ItemStatus = "FOUND"
)

func (s ItemStatus) Valid() bool {
	return s == StatusLost || s == StatusFound
}

// Item is a lost/found report. IsResolved is independent of Status: a
// LOST item can be resolved and a FOUND one still open.
type Item struct {
	gorm.Model
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `gorm:"not null" json:"description"`
	Category      Category   `gorm:"not null" json:"category"`
	Status        ItemStatus `gorm:"not null" json:"status"`
	Location      string     `gorm:"not null" json:"location"`
	ContactNumber string     `gorm:"not null" json:"contactNumber"`
	ImageURL      string     `json:"imageUrl"`
	IsResolved    bool       `gorm:"not null;default:false" json:"isResolved"`
	UserID        uint       `gorm:"not null;index" json:"userId"`
}
