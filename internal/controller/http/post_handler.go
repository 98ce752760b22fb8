package http

import (
	"net/http"
	"strconv"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase     usecase.PostUseCase
	identityUseCase usecase.IdentityUseCase
	logger          *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, identityUseCase usecase.IdentityUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase:     postUseCase,
		identityUseCase: identityUseCase,
		logger:          logger,
	}
}

type CreatePostRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Content     string `form:"content" binding:"required"`
}

// CreatePost godoc
// @Summary      Create a blog post
// @Description  Create a post with a cover image. The image is uploaded to the asset store before the record is persisted.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Post title"
// @Param        description formData string true "Short description"
// @Param        category formData string true "Category (stored lower-case)"
// @Param        content formData string true "Post body (HTML)"
// @Param        coverImage formData file true "Cover image (max 20MB)"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageFile, err := c.FormFile("coverImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cover image is required"})
		return
	}

	// The author snapshot is denormalized from the signed-in user.
	author, err := h.identityUseCase.GetUser(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := h.postUseCase.CreatePost(req.Title, req.Description, req.Category, req.Content, imageFile, author.Username, author.AvatarURL)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a blog post
// @Description  Update a post. All text fields are required on every update; supplying a new cover image replaces the stored asset.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        title formData string true "Post title"
// @Param        description formData string true "Short description"
// @Param        category formData string true "Category"
// @Param        content formData string true "Post body (HTML)"
// @Param        coverImage formData file false "Replacement cover image"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Optional replacement image.
	imageFile, err := c.FormFile("coverImage")
	if err != nil {
		imageFile = nil
	}

	post, err := h.postUseCase.UpdatePost(c.Param("id"), req.Title, req.Description, req.Category, req.Content, imageFile)
	if err != nil {
		h.logger.Error("Failed to update post %s: %v", c.Param("id"), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

type DeletePostRequest struct {
	ImageKey string `json:"image_key"`
}

// DeletePost godoc
// @Summary      Delete a blog post
// @Description  Delete a post and, best-effort, its stored cover image. An image_key in the body overrides the stored key.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body DeletePostRequest false "Optional asset key override"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	var req DeletePostRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	if err := h.postUseCase.DeletePost(c.Param("id"), req.ImageKey); err != nil {
		h.logger.Error("Failed to delete post %s: %v", c.Param("id"), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

type ToggleLiveRequest struct {
	Live *bool `json:"live" binding:"required"`
}

// ToggleLive godoc
// @Summary      Toggle post visibility
// @Description  Set the live flag without touching any other field.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body ToggleLiveRequest true "New visibility"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/live [patch]
func (h *PostHandler) ToggleLive(c *gin.Context) {
	var req ToggleLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "live flag is required"})
		return
	}

	post, err := h.postUseCase.ToggleLive(c.Param("id"), *req.Live)
	if err != nil {
		h.logger.Error("Failed to toggle post %s: %v", c.Param("id"), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      List all posts
// @Description  Dashboard listing: every post, hidden ones included, newest first.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// LatestPosts godoc
// @Summary      Latest live posts
// @Description  Public feed of live posts, newest first, bounded by limit (default 10, capped at 50).
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Maximum number of posts"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/latest [get]
func (h *PostHandler) LatestPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	posts, err := h.postUseCase.ListLivePosts(limit)
	if err != nil {
		h.logger.Error("Failed to list latest posts: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}
