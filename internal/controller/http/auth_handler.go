package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"inkwell/internal/usecase"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

const (
	stateTTL        = 10 * time.Minute
	userinfoTimeout = 10 * time.Second
	userinfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type AuthHandler struct {
	identityUseCase usecase.IdentityUseCase
	oauthConfig     *oauth2.Config
	jwtService      *jwt.Service
	redisClient     *redis.Client
	logger          *logger.Logger
}

func NewAuthHandler(
	identityUseCase usecase.IdentityUseCase,
	oauthConfig *oauth2.Config,
	jwtService *jwt.Service,
	redisClient *redis.Client,
	logger *logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		identityUseCase: identityUseCase,
		oauthConfig:     oauthConfig,
		jwtService:      jwtService,
		redisClient:     redisClient,
		logger:          logger,
	}
}

type googleUserinfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleLogin godoc
// @Summary      Start Google sign-in
// @Description  Redirects to the Google consent screen with a one-time state nonce.
// @Tags         auth
// @Success      307
// @Router       /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.New().String()
	if err := h.redisClient.Set(c.Request.Context(), stateKey(state), "1", stateTTL).Err(); err != nil {
		h.logger.Error("Failed to store oauth state: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start sign-in"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

// GoogleCallback godoc
// @Summary      Google sign-in callback
// @Description  Exchanges the authorization code, resolves the user record and returns a platform JWT. A resolver failure aborts the sign-in.
// @Tags         auth
// @Produce      json
// @Param        code query string true "Authorization code"
// @Param        state query string true "State nonce"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	state := c.Query("state")
	deleted, err := h.redisClient.Del(ctx, stateKey(state)).Result()
	if err != nil || deleted == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired state"})
		return
	}

	token, err := h.oauthConfig.Exchange(ctx, c.Query("code"))
	if err != nil {
		h.logger.Error("OAuth code exchange failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Code exchange failed"})
		return
	}

	info, err := h.fetchUserinfo(ctx, token)
	if err != nil {
		h.logger.Error("Failed to fetch userinfo: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to fetch user profile"})
		return
	}

	// The resolver must succeed before a session exists: authorization keys
	// off the stored user record.
	user, err := h.identityUseCase.Resolve(info.Email, info.Name, info.Picture, info.ID)
	if err != nil {
		h.logger.Error("Identity resolve failed for %s: %v", info.Email, err)
		respondError(c, err)
		return
	}

	role := "user"
	if user.IsAdmin {
		role = "admin"
	}

	sessionToken, err := h.jwtService.GenerateToken(user.ID, role)
	if err != nil {
		h.logger.Error("Failed to generate session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": sessionToken, "user": user})
}

func (h *AuthHandler) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*googleUserinfo, error) {
	ctx, cancel := context.WithTimeout(ctx, userinfoTimeout)
	defer cancel()

	resp, err := h.oauthConfig.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned %d", resp.StatusCode)
	}

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("userinfo response missing email")
	}
	return &info, nil
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.identityUseCase.GetUser(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SignOut godoc
// @Summary      Sign out
// @Description  Sessions are stateless JWTs; the client discards the token.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/signout [get]
func (h *AuthHandler) SignOut(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func stateKey(state string) string {
	return "oauth_state:" + state
}
