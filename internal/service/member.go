package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fam-nudger/backend/internal/engine"
	"github.com/fam-nudger/backend/internal/models"
	"github.com/fam-nudger/backend/internal/types"
)

var ErrMemberNotFound = errors.New("family member not found")

// MemberService manages the household roster
type MemberService struct {
	db *gorm.DB
}

var _ IMemberService = (*MemberService)(nil)

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

func (s *MemberService) CreateMember(ctx context.Context, userID uuid.UUID, member *models.FamilyMember) (*models.FamilyMember, error) {
	member.ID = uuid.New()
	member.UserID = userID
	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) GetMember(ctx context.Context, userID, memberID uuid.UUID) (*models.FamilyMember, error) {
	var member models.FamilyMember
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", memberID, userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (s *MemberService) ListMembers(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, userID, memberID uuid.UUID, req *types.UpdateMemberRequest) (*models.FamilyMember, error) {
	member, err := s.GetMember(ctx, userID, memberID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.MemberType != nil {
		member.MemberType = *req.MemberType
	}
	if req.Age != nil {
		member.Age = *req.Age
	}
	if req.Conditions != nil {
		member.Conditions = *req.Conditions
	}
	if req.Allergies != nil {
		member.Allergies = *req.Allergies
	}

	if err := s.db.WithContext(ctx).Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, userID, memberID uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", memberID, userID).Delete(&models.FamilyMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// EngineMembers converts roster rows into the engine's member view.
func EngineMembers(members []models.FamilyMember) []engine.Member {
	out := make([]engine.Member, 0, len(members))
	for _, m := range members {
		out = append(out, engine.Member{
			Name:       m.Name,
			Type:       engine.MemberType(m.MemberType),
			Age:        m.Age,
			Conditions: m.Conditions,
			Allergies:  m.Allergies,
		})
	}
	return out
}
