package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kokolodziejska/zagrane/internal/middleware"
	"github.com/kokolodziejska/zagrane/internal/pkg/authz"
	"github.com/kokolodziejska/zagrane/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	settingsGroup := v1.Group("/settings")
	{
		settingsGroup.GET("", h.GetSummary)
		settingsGroup.GET("/disciplines", h.ListDisciplines)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	settingsGroup := protected.Group("/settings")
	settingsGroup.Use(middleware.RequirePermission(authz.ActionManageSettings))
	{
		settingsGroup.GET("/full", h.GetFull)
		settingsGroup.PUT("", h.Update)
		settingsGroup.PUT("/default-players", h.SetDefaultPlayers)
		settingsGroup.PUT("/default-discipline", h.SetDefaultDiscipline)
	}

	disciplineGroup := protected.Group("/disciplines")
	disciplineGroup.Use(middleware.RequirePermission(authz.ActionManageDisciplines))
	{
		disciplineGroup.POST("", h.AddDiscipline)
		disciplineGroup.PUT("", h.UpdateDisciplines)
	}
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) GetFull(c *gin.Context) {
	full, err := h.service.Full(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, full)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	full, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, full)
}

func (h *Handler) ListDisciplines(c *gin.Context) {
	disciplines, err := h.service.ListDisciplines(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load disciplines")
		return
	}

	out := make([]DisciplineResponse, 0, len(disciplines))
	for _, d := range disciplines {
		out = append(out, DisciplineResponse{ID: d.ID, Name: d.Name, IsEnabled: d.IsEnabled})
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) AddDiscipline(c *gin.Context) {
	var req DisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.AddDiscipline(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, DisciplineResponse{ID: d.ID, Name: d.Name, IsEnabled: d.IsEnabled})
}

func (h *Handler) UpdateDisciplines(c *gin.Context) {
	var req UpdateDisciplinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateDisciplines(c.Request.Context(), req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Disciplines updated"})
}

func (h *Handler) SetDefaultDiscipline(c *gin.Context) {
	var req DefaultDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetDefaultDiscipline(c.Request.Context(), req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Default discipline updated"})
}

func (h *Handler) SetDefaultPlayers(c *gin.Context) {
	var req DefaultPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetDefaultPlayers(c.Request.Context(), req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Default player count updated"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Message,
			gin.H{"field": validationErr.Field})
	case errors.Is(err, ErrSettingsNotFound):
		response.Error(c, http.StatusNotFound, "SETTINGS_NOT_FOUND", "Global settings not found")
	case errors.Is(err, ErrDisciplineExists):
		response.Error(c, http.StatusConflict, "DISCIPLINE_EXISTS", "Discipline already exists")
	case errors.Is(err, ErrDisciplineNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Discipline not found")
	case errors.Is(err, ErrEmptyDisciplineList):
		response.Error(c, http.StatusBadRequest, "EMPTY_LIST", "Discipline list cannot be empty")
	case errors.Is(err, ErrProtectedMissing):
		response.Error(c, http.StatusBadRequest, "PROTECTED_MISSING", "List must keep the protected discipline")
	case errors.Is(err, ErrDefaultMissing):
		response.Error(c, http.StatusBadRequest, "DEFAULT_MISSING", "List must keep the default discipline")
	default:
		response.Error(c, http.StatusInternalServerError, "SETTINGS_FAILED", "Failed to update settings")
	}
}
