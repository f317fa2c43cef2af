package database

import (
	"gorm.io/gorm"

	"github.com/fam-nudger/backend/internal/models"
)

// Migrate applies the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FamilyMember{},
		&models.Product{},
		&models.ProductAnalysis{},
	)
}
