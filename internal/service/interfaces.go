package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fam-nudger/backend/internal/engine"
	"github.com/fam-nudger/backend/internal/models"
	"github.com/fam-nudger/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IMemberService defines the interface for household roster operations
type IMemberService interface {
	CreateMember(ctx context.Context, userID uuid.UUID, member *models.FamilyMember) (*models.FamilyMember, error)
	GetMember(ctx context.Context, userID, memberID uuid.UUID) (*models.FamilyMember, error)
	ListMembers(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error)
	UpdateMember(ctx context.Context, userID, memberID uuid.UUID, req *types.UpdateMemberRequest) (*models.FamilyMember, error)
	DeleteMember(ctx context.Context, userID, memberID uuid.UUID) error
}

// IProductService defines the interface for product ingredient lookups
type IProductService interface {
	GetByBarcode(ctx context.Context, barcode string) (*models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

// IAnalysisService defines the interface for product scoring operations
type IAnalysisService interface {
	AnalyzeForUser(ctx context.Context, userID uuid.UUID, productIdentity, ingredientsText string) (*types.AnalysisResponse, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]models.ProductAnalysis, error)
	Engine() *engine.Engine
}

// IImageService defines the interface for label photo storage
type IImageService interface {
	UploadLabelImage(ctx context.Context, data []byte, contentType string) (string, error)
}
