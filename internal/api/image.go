package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blendbase/backend/internal/service"
)

// maxImageSize caps uploaded recipe images at 5 MB.
const maxImageSize = 5 << 20

type ImageHandler struct {
	images service.IImageService
}

func NewImageHandler(images service.IImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// UploadImage accepts a multipart "image" file, stores it and returns
// the public URL to use as a recipe image.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
