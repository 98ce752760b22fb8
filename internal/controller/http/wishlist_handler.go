package http

import (
	"net/http"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistUseCase usecase.WishlistUseCase
	logger          *logger.Logger
}

func NewWishlistHandler(wishlistUseCase usecase.WishlistUseCase, logger *logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
		logger:          logger,
	}
}

type AddWishlistRequest struct {
	PostID   string `json:"post_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	ImageURL string `json:"image_url" binding:"required"`
}

// AddItem godoc
// @Summary      Add a post to the wishlist
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddWishlistRequest true "Post snapshot"
// @Success      201  {object}  entity.WishlistItem
// @Failure      409  {object}  map[string]string
// @Router       /wishlist [post]
func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.wishlistUseCase.AddItem(c.GetString("user_id"), req.PostID, req.Title, req.Category, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetWishlist godoc
// @Summary      List the current user's wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /wishlist [get]
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	items, err := h.wishlistUseCase.GetWishlist(c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to list wishlist: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// RemoveItem godoc
// @Summary      Remove a wishlist entry
// @Description  Accepts a wishlist entry id, or a post id as fallback.
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Entry or post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /wishlist/{id} [delete]
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	if err := h.wishlistUseCase.RemoveItem(c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully"})
}

// CheckItem godoc
// @Summary      Check whether a post is wishlisted
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        post_id query string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /wishlist/check [get]
func (h *WishlistHandler) CheckItem(c *gin.Context) {
	item, err := h.wishlistUseCase.IsWishlisted(c.GetString("user_id"), c.Query("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if item == nil {
		c.JSON(http.StatusOK, gin.H{"wishlisted": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlisted": true, "item": item})
}
