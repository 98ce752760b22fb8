package http

import (
	"errors"
	"net/http"

	"inkwell/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondError maps the use-case error classes onto HTTP statuses. Anything
// unclassified is a server error and the detail stays out of the response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrAssetUpload):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image upload failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
