package http

import (
	"net/http"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewUploadHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// UploadImage godoc
// @Summary      Upload a standalone image
// @Description  Upload an image for embedding in post bodies. The asset is stored independently of any post record.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Image file (max 20MB)"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	imageFile, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	url, key, err := h.postUseCase.UploadImage(imageFile)
	if err != nil {
		h.logger.Error("Failed to upload image: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "image_key": key})
}
