// internal/interfaces/http/handlers/upload.go
package handlers

import (
	"net/http"

	"github.com/allithy/storefront-backend/internal/config"
	"github.com/allithy/storefront-backend/internal/domain/upload"
	"github.com/allithy/storefront-backend/internal/pkg/imghost"
	"github.com/gin-gonic/gin"
)

// UploadHandler handles product image uploads
type UploadHandler struct {
	uploadService *upload.Service
	config        *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		uploadService: upload.NewService(imghost.NewClient(cfg), cfg),
		config:        cfg,
	}
}

// UploadImages handles POST /admin/uploads/images. Files arrive as the
// multipart field "images"; every file is validated before anything is
// sent to the image host, and the first host failure aborts the batch.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid multipart form",
		})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "At least one image is required",
		})
		return
	}

	result, err := h.uploadService.UploadImages(c.Request.Context(), files)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Images uploaded successfully",
		"data":    result,
	})
}
