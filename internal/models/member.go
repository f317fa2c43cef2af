package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyMember is one person in a user's household roster. Conditions and
// Allergies are free-form strings; the engine lowercases them into profile
// tags at analysis time.
type FamilyMember struct {
	ID         uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	MemberType string         `gorm:"size:20;not null" json:"member_type"`
	Age        int            `json:"age"`
	Conditions []string       `gorm:"serializer:json" json:"conditions"`
	Allergies  []string       `gorm:"serializer:json" json:"allergies"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
