package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fam-nudger/backend/internal/service"
)

type ProductHandler struct {
	products service.IProductService
}

func NewProductHandler(products service.IProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("/search", h.Search)
		products.GET("/:barcode", h.GetByBarcode)
	}
}

func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	products, err := h.products.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "product search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")

	product, err := h.products.GetByBarcode(c.Request.Context(), barcode)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "product lookup failed"})
		return
	}

	c.JSON(http.StatusOK, product)
}
