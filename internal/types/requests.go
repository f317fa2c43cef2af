package types

import "github.com/fam-nudger/backend/internal/engine"

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued session token
type AuthResponse struct {
	Token string `json:"token"`
}

// CreateMemberRequest is the payload for adding a family member
type CreateMemberRequest struct {
	Name       string   `json:"name" binding:"required"`
	MemberType string   `json:"member_type" binding:"required,oneof=adult child toddler senior pregnant"`
	Age        int      `json:"age" binding:"gte=0,lte=130"`
	Conditions []string `json:"conditions"`
	Allergies  []string `json:"allergies"`
}

// UpdateMemberRequest is the payload for editing a family member. Nil fields
// are left unchanged.
type UpdateMemberRequest struct {
	Name       *string   `json:"name"`
	MemberType *string   `json:"member_type"`
	Age        *int      `json:"age"`
	Conditions *[]string `json:"conditions"`
	Allergies  *[]string `json:"allergies"`
}

// AnalyzeRequest is the payload for scoring a product against the caller's
// household. Either IngredientsText or Barcode must be set.
type AnalyzeRequest struct {
	ProductName     string `json:"product_name"`
	IngredientsText string `json:"ingredients_text"`
	Barcode         string `json:"barcode"`
}

// AnalysisResponse is the scored outcome returned to clients.
type AnalysisResponse struct {
	ProductIdentity string                `json:"product_identity"`
	Result          engine.AnalysisResult `json:"result"`
	Alternatives    []engine.Alternative  `json:"alternatives"`
	Cached          bool                  `json:"cached"`
}
