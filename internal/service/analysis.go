package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fam-nudger/backend/internal/engine"
	"github.com/fam-nudger/backend/internal/models"
	"github.com/fam-nudger/backend/internal/types"
)

const (
	analysisCacheTTL  = 24 * time.Hour
	defaultHistoryLen = 20
)

// AnalysisService runs the scoring engine for a user's household, caching
// results in Redis and persisting them for history. Results are cached per
// (product, profile hash, taxonomy version): any roster edit or taxonomy
// bump changes the key and forces a fresh computation.
type AnalysisService struct {
	db      *gorm.DB
	redis   *redis.Client
	engine  *engine.Engine
	members IMemberService
	logger  *zap.Logger
}

var _ IAnalysisService = (*AnalysisService)(nil)

func NewAnalysisService(db *gorm.DB, rdb *redis.Client, eng *engine.Engine, members IMemberService, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		db:      db,
		redis:   rdb,
		engine:  eng,
		members: members,
		logger:  logger,
	}
}

// Engine exposes the underlying scoring engine.
func (s *AnalysisService) Engine() *engine.Engine { return s.engine }

// AnalyzeForUser scores ingredientsText against the caller's household.
// productIdentity is a stable handle for the product (barcode, or a name
// slug for manual entries); it keys caching and history.
func (s *AnalysisService) AnalyzeForUser(ctx context.Context, userID uuid.UUID, productIdentity, ingredientsText string) (*types.AnalysisResponse, error) {
	roster, err := s.members.ListMembers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load household roster: %w", err)
	}
	engMembers := EngineMembers(roster)

	profileHash := hashProfiles(engine.ResolveProfiles(engMembers))
	cacheKey := fmt.Sprintf("fam:analysis:%s:%s:%s", productIdentity, profileHash, s.engine.TaxonomyVersion())

	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		cached.Cached = true
		return cached, nil
	}

	result, err := s.engine.AnalyzeProduct(ctx, ingredientsText, engMembers)
	if err != nil && !errors.Is(err, engine.ErrFallbackUnavailable) {
		return nil, err
	}
	degraded := err != nil

	result.ProductID = productIdentity
	response := &types.AnalysisResponse{
		ProductIdentity: productIdentity,
		Result:          *result,
		Alternatives:    engine.Alternatives(result.FlaggedIngredients),
	}

	if degraded {
		// Do not cache or persist a result with unreachable fallback
		// classifications; a retry may do better.
		s.logger.Warn("serving degraded analysis",
			zap.String("product", productIdentity),
			zap.Error(err))
		return response, nil
	}

	s.cacheSet(ctx, cacheKey, response)
	s.persist(ctx, userID, productIdentity, profileHash, response)

	return response, nil
}

// History returns the user's most recent persisted analyses.
func (s *AnalysisService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.ProductAnalysis, error) {
	if limit <= 0 {
		limit = defaultHistoryLen
	}
	var rows []models.ProductAnalysis
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *AnalysisService) cacheGet(ctx context.Context, key string) *types.AnalysisResponse {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("analysis cache read failed", zap.Error(err))
		}
		return nil
	}
	var response types.AnalysisResponse
	if err := json.Unmarshal(data, &response); err != nil {
		s.logger.Warn("analysis cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &response
}

func (s *AnalysisService) cacheSet(ctx context.Context, key string, response *types.AnalysisResponse) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, analysisCacheTTL).Err(); err != nil {
		s.logger.Warn("analysis cache write failed", zap.Error(err))
	}
}

func (s *AnalysisService) persist(ctx context.Context, userID uuid.UUID, productIdentity, profileHash string, response *types.AnalysisResponse) {
	data, err := json.Marshal(response.Result)
	if err != nil {
		return
	}
	row := models.ProductAnalysis{
		ID:              uuid.New(),
		UserID:          userID,
		ProductIdentity: productIdentity,
		ProfileHash:     profileHash,
		TaxonomyVersion: response.Result.TaxonomyVersion,
		OverallScore:    response.Result.OverallScore,
		RiskLevel:       string(response.Result.RiskLevel),
		ResultJSON:      string(data),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		s.logger.Warn("failed to persist analysis", zap.Error(err))
	}
}

// hashProfiles derives a stable digest of the active profile tags.
func hashProfiles(profiles engine.ProfileSet) string {
	sum := sha256.Sum256([]byte(strings.Join(profiles.Tags(), ",")))
	return hex.EncodeToString(sum[:8])
}
