package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fam-nudger/backend/internal/service"
)

const maxLabelImageSize = 10 << 20 // 10 MiB

type ImageHandler struct {
	images service.IImageService
}

func NewImageHandler(images service.IImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/labels", h.UploadLabel)
}

// UploadLabel stores a photographed ingredient label and returns its URL.
func (h *ImageHandler) UploadLabel(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxLabelImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxLabelImageSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.images.UploadLabelImage(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
