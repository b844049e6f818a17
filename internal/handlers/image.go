package handlers

import (
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/recipefinder-api/internal/providers"
)

// IngredientImager resolves ingredient image URLs against a configured base.
type IngredientImager interface {
	IngredientImageURL(ingredient string, size providers.ImageSize) string
}

// ImageHandler builds TheMealDB image URLs.
type ImageHandler struct {
	Images IngredientImager
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images IngredientImager) *ImageHandler {
	return &ImageHandler{Images: images}
}

// Thumbnail handles GET /v1/images/thumbnail?url=...&size=small
func (h *ImageHandler) Thumbnail(c *gin.Context) {
	imageURL := c.Query("url")
	if !govalidator.IsRequestURL(imageURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'url' must be an absolute URL"})
		return
	}
	size := providers.ParseImageSize(c.Query("size"))
	c.JSON(http.StatusOK, gin.H{"url": providers.ThumbnailURL(imageURL, size)})
}

// IngredientImage handles GET /v1/images/ingredients/:name?size=small
func (h *ImageHandler) IngredientImage(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient name is required"})
		return
	}
	size := providers.ParseImageSize(c.Query("size"))
	c.JSON(http.StatusOK, gin.H{"url": h.Images.IngredientImageURL(name, size)})
}
