package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fam-nudger/backend/internal/service"
	"github.com/fam-nudger/backend/internal/types"
)

type AnalysisHandler struct {
	analysis service.IAnalysisService
	products service.IProductService
}

func NewAnalysisHandler(analysis service.IAnalysisService, products service.IProductService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, products: products}
}

// RegisterRoutes wires the analysis endpoints. The scoring endpoint takes a
// separate group so it can carry the rate limiter without slowing reads.
func (h *AnalysisHandler) RegisterRoutes(scored, reads *gin.RouterGroup) {
	scored.POST("/analyze", h.Analyze)
	reads.GET("/analyses", h.History)
}

// Analyze scores a product against the caller's household. Clients send
// either raw ingredient text or a barcode; with a barcode the ingredient
// list is looked up from OpenFoodFacts first.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.IngredientsText == "" && req.Barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients_text or barcode required"})
		return
	}

	identity := req.Barcode
	ingredients := req.IngredientsText

	if req.Barcode != "" && ingredients == "" {
		product, err := h.products.GetByBarcode(c.Request.Context(), req.Barcode)
		if err != nil {
			if errors.Is(err, service.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "product lookup failed"})
			return
		}
		ingredients = product.IngredientsText
	}
	if identity == "" {
		identity = manualIdentity(req.ProductName, ingredients)
	}

	response, err := h.analysis.AnalyzeForUser(c.Request.Context(), userID, identity, ingredients)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze product"})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AnalysisHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := h.analysis.History(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": rows})
}

// manualIdentity derives a stable product handle for barcode-less entries so
// repeat analyses of the same pasted label hit the cache.
func manualIdentity(name, ingredients string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	if base == "" {
		base = "manual"
	}
	base = strings.ReplaceAll(base, " ", "-")
	sum := sha256.Sum256([]byte(strings.ToLower(ingredients)))
	return fmt.Sprintf("%s:%s", base, hex.EncodeToString(sum[:6]))
}
