package reservation

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
	"github.com/kokolodziejska/zagrane/internal/middleware"
	"github.com/kokolodziejska/zagrane/internal/modules/pricing"
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
	resGroup := v1.Group("/reservations")
	{
		resGroup.GET("/day", h.ListForDay)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	resGroup := protected.Group("/reservations")
	{
		resGroup.POST("/quote", h.Quote)
		resGroup.POST("", middleware.RequirePermission(authz.ActionCreateBooking), h.Create)
		resGroup.GET("/my/upcoming", h.ListMyUpcoming)
		resGroup.GET("/my/history", h.ListMyHistory)
		resGroup.DELETE("/:id", middleware.RequirePermission(authz.ActionCancelOwnBooking), h.Cancel)

		resGroup.GET("/admin/day", middleware.RequirePermission(authz.ActionListAllBookings), h.AdminListForDay)

		admin := resGroup.Group("/admin")
		admin.Use(middleware.RequirePermission(authz.ActionCancelAnyBooking))
		{
			admin.DELETE("/:id", h.AdminCancel)
		}
	}
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, quote)
}

func (h *Handler) Create(c *gin.Context) {
	clientID := c.GetInt64("user_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Create(c.Request.Context(), clientID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toResponse(*res))
}

func (h *Handler) ListMyUpcoming(c *gin.Context) {
	h.listMine(c, true)
}

func (h *Handler) ListMyHistory(c *gin.Context) {
	h.listMine(c, false)
}

func (h *Handler) listMine(c *gin.Context, upcoming bool) {
	clientID := c.GetInt64("user_id")

	reservations, err := h.service.ListMine(c.Request.Context(), clientID, upcoming)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load reservations")
		return
	}

	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toResponse(r))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) ListForDay(c *gin.Context) {
	day, err := time.Parse(dateLayout, c.Query("day"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Query parameter 'day' must be YYYY-MM-DD")
		return
	}

	var facilityID int64
	if raw := c.Query("facility_id"); raw != "" {
		facilityID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid facility ID")
			return
		}
	}

	reservations, err := h.service.ListForDay(c.Request.Context(), day, facilityID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load reservations")
		return
	}

	// Public schedule hides who booked, only the occupied slots are shown
	out := make([]gin.H, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, gin.H{
			"facility_id": r.FacilityID,
			"date":        r.Date.Format(dateLayout),
			"start":       domain.FormatMinute(r.StartMinute),
			"duration":    r.Duration,
		})
	}
	response.Success(c, http.StatusOK, out)
}

// AdminListForDay is the front-desk view: same filters as the public
// schedule, but with client and payment details included.
func (h *Handler) AdminListForDay(c *gin.Context) {
	day, err := time.Parse(dateLayout, c.Query("day"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Query parameter 'day' must be YYYY-MM-DD")
		return
	}

	var facilityID int64
	if raw := c.Query("facility_id"); raw != "" {
		facilityID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid facility ID")
			return
		}
	}

	reservations, err := h.service.ListForDay(c.Request.Context(), day, facilityID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load reservations")
		return
	}

	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toResponse(r))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Cancel(c *gin.Context) {
	clientID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), clientID, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

func (h *Handler) AdminCancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	if err := h.service.AdminCancel(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation or facility not found")
	case errors.Is(err, pricing.ErrNoApplicableRule):
		response.Error(c, http.StatusNotFound, "NO_APPLICABLE_RULE", "No price rule covers the requested window")
	case errors.Is(err, pricing.ErrInvalidInput), errors.Is(err, ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid date, time, duration or player count")
	case errors.Is(err, ErrRulesNotAccepted):
		response.Error(c, http.StatusBadRequest, "RULES_NOT_ACCEPTED", "Facility rules must be accepted")
	case errors.Is(err, ErrTooSoon):
		response.Error(c, http.StatusBadRequest, "TOO_SOON", "Booking does not meet the minimum advance time")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Reservation belongs to another client")
	case errors.Is(err, ErrTooLate):
		response.Error(c, http.StatusBadRequest, "TOO_LATE", "Cancellation window has passed")
	case errors.Is(err, ErrAlreadyStarted):
		response.Error(c, http.StatusBadRequest, "ALREADY_STARTED", "Reservation already started")
	default:
		response.Error(c, http.StatusInternalServerError, "RESERVATION_FAILED", "Failed to process reservation")
	}
}
