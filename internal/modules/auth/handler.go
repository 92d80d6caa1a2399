package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
	"github.com/kokolodziejska/zagrane/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication. The access token
// travels in an HTTP-only cookie so browser clients never touch it directly.
type Handler struct {
	service      *Service
	cookieName   string
	cookieSecure bool
	tokenTTL     time.Duration
}

func NewHandler(service *Service, cookieName string, cookieSecure bool, tokenTTL time.Duration) *Handler {
	return &Handler{
		service:      service,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		tokenTTL:     tokenTTL,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.PUT("/me", h.UpdateProfile)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	client, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "WEAK_PASSWORD",
				"Password must be at least 8 characters with upper, lower, digit and special characters")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, toPublic(client))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		case errors.Is(err, ErrAccountDisabled):
			response.Error(c, http.StatusForbidden, "ACCOUNT_DISABLED", "This account is disabled")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, result.AccessToken, int(h.tokenTTL.Seconds()), "/", "", h.cookieSecure, true)

	response.Success(c, http.StatusOK, toPublic(result.Client))
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) GetMe(c *gin.Context) {
	clientID := c.GetInt64("user_id")

	client, err := h.service.GetCurrentClient(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Account not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load account")
		return
	}

	response.Success(c, http.StatusOK, toPublic(client))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	clientID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	client, err := h.service.UpdateProfile(c.Request.Context(), clientID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update profile")
		return
	}

	response.Success(c, http.StatusOK, toPublic(client))
}

func toPublic(c *domain.Client) ClientPublic {
	return ClientPublic{
		ID:           c.ID,
		Email:        c.Email,
		Name:         c.Name,
		Surname:      c.Surname,
		Role:         string(c.Role),
		DepartmentID: c.DepartmentID,
	}
}
