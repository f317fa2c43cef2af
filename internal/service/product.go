package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fam-nudger/backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

const (
	defaultOpenFoodFactsURL = "https://world.openfoodfacts.org"
	productFields           = "product_name,ingredients_text"
	maxSearchResults        = 10
)

// ProductService looks up ingredient data from OpenFoodFacts, caching hits
// in the products table so repeat scans skip the network.
type ProductService struct {
	db      *gorm.DB
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

var _ IProductService = (*ProductService)(nil)

func NewProductService(db *gorm.DB, baseURL string, logger *zap.Logger) *ProductService {
	if baseURL == "" {
		baseURL = defaultOpenFoodFactsURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		db:      db,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

type offProduct struct {
	ProductName     string `json:"product_name"`
	IngredientsText string `json:"ingredients_text"`
}

type offProductResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offSearchResponse struct {
	Products []struct {
		Code            string `json:"code"`
		ProductName     string `json:"product_name"`
		IngredientsText string `json:"ingredients_text"`
	} `json:"products"`
}

// GetByBarcode resolves a barcode to a product, serving from the local cache
// when possible. A barcode OpenFoodFacts does not know yields
// ErrProductNotFound.
func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	var cached models.Product
	err := s.db.WithContext(ctx).Where("barcode = ?", barcode).First(&cached).Error
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/v2/product/%s?fields=%s", s.baseURL, url.PathEscape(barcode), productFields)
	var payload offProductResponse
	if err := s.fetchJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if payload.Status != 1 {
		return nil, ErrProductNotFound
	}

	product := models.Product{
		ID:              uuid.New(),
		Barcode:         barcode,
		Name:            payload.Product.ProductName,
		IngredientsText: payload.Product.IngredientsText,
		Source:          "openfoodfacts",
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		// Lookup still succeeded; a cache write failure is not fatal.
		s.logger.Warn("failed to cache product", zap.String("barcode", barcode), zap.Error(err))
	}
	return &product, nil
}

// Search queries OpenFoodFacts by product name. Results are not cached:
// search hits have no stable identity until the user picks one.
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v2/search?search_terms=%s&fields=code,%s&page_size=%d",
		s.baseURL, url.QueryEscape(query), productFields, maxSearchResults)

	var payload offSearchResponse
	if err := s.fetchJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(payload.Products))
	for _, p := range payload.Products {
		products = append(products, models.Product{
			Barcode:         p.Code,
			Name:            p.ProductName,
			IngredientsText: p.IngredientsText,
			Source:          "openfoodfacts",
		})
	}
	return products, nil
}

func (s *ProductService) fetchJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach OpenFoodFacts: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OpenFoodFacts request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode OpenFoodFacts response: %w", err)
	}
	return nil
}
