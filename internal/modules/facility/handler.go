package facility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

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
	facilityGroup := v1.Group("/facilities")
	{
		facilityGroup.GET("", h.List)
		facilityGroup.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	facilityGroup := protected.Group("/facilities")
	facilityGroup.Use(middleware.RequirePermission(authz.ActionManageFacilities))
	{
		facilityGroup.GET("/next-free-id", h.NextFreeID)
		facilityGroup.POST("", h.Create)
		facilityGroup.PUT("/:id", h.Update)
		facilityGroup.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	facilities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load facilities")
		return
	}

	out := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, toResponse(f))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid facility ID")
		return
	}

	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Facility not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load facility")
		return
	}

	response.Success(c, http.StatusOK, toResponse(*f))
}

func (h *Handler) NextFreeID(c *gin.Context) {
	id, err := h.service.NextFreeID(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to compute next ID")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *Handler) Create(c *gin.Context) {
	var req FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toResponse(*f))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid facility ID")
		return
	}

	var req FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.ID = id

	f, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toResponse(*f))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid facility ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Facility deleted"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Message,
			gin.H{"field": validationErr.Field})
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Facility not found")
	case errors.Is(err, ErrSettingsNotFound):
		response.Error(c, http.StatusNotFound, "SETTINGS_NOT_FOUND", "Global settings not found")
	case errors.Is(err, ErrHasReservations):
		response.Error(c, http.StatusConflict, "HAS_RESERVATIONS", "Facility has upcoming reservations")
	default:
		response.Error(c, http.StatusInternalServerError, "FACILITY_FAILED", "Failed to store facility")
	}
}
