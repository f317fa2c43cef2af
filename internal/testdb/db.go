// Package testdb provides an in-memory database for service and handler
// tests.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fam-nudger/backend/internal/models"
)

// Open returns an in-memory sqlite database with the full schema migrated.
// Each call gets its own database, so tests stay independent.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FamilyMember{},
		&models.Product{},
		&models.ProductAnalysis{},
	))

	return db
}
