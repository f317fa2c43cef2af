package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductAnalysis is a persisted scoring outcome. ProfileHash and
// TaxonomyVersion together identify which household state and rule set
// produced the result, so stale rows are never served for a changed roster.
type ProductAnalysis struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ProductIdentity string    `gorm:"size:255;not null;index" json:"product_identity"`
	ProfileHash     string    `gorm:"size:64;not null" json:"profile_hash"`
	TaxonomyVersion string    `gorm:"size:16;not null" json:"taxonomy_version"`
	OverallScore    int       `gorm:"not null" json:"overall_score"`
	RiskLevel       string    `gorm:"size:16;not null" json:"risk_level"`
	ResultJSON      string    `gorm:"type:text;not null" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}
