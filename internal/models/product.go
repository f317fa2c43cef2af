package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product caches ingredient data looked up from OpenFoodFacts or entered
// manually, keyed by barcode when one is known.
type Product struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	Barcode         string         `gorm:"size:32;uniqueIndex" json:"barcode,omitempty"`
	Name            string         `gorm:"size:255" json:"name"`
	IngredientsText string         `gorm:"type:text" json:"ingredients_text"`
	Source          string         `gorm:"size:32" json:"source"`
	LabelImageURL   string         `gorm:"size:512" json:"label_image_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
