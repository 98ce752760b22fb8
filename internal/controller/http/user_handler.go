package http

import (
	"net/http"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	identityUseCase usecase.IdentityUseCase
	logger          *logger.Logger
}

func NewUserHandler(identityUseCase usecase.IdentityUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		identityUseCase: identityUseCase,
		logger:          logger,
	}
}

// ListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.identityUseCase.ListUsers()
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.identityUseCase.DeleteUser(c.Param("id")); err != nil {
		h.logger.Error("Failed to delete user %s: %v", c.Param("id"), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
