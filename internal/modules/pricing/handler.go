package pricing

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

// Handler manages HTTP interactions for price rules and published price
// tables.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	priceGroup := v1.Group("/prices")
	{
		priceGroup.GET("", h.ListRules)
		priceGroup.GET("/tables", h.ListPriceTables)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	priceGroup := protected.Group("/prices")
	priceGroup.Use(middleware.RequirePermission(authz.ActionManagePrices))
	{
		priceGroup.POST("", h.CreateRule)
		priceGroup.PUT("/:id", h.UpdateRule)
		priceGroup.DELETE("/:id", h.DeleteRule)
	}
}

func (h *Handler) ListRules(c *gin.Context) {
	rules, err := h.service.ListRules(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load price rules")
		return
	}

	out := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, toRuleResponse(r))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) ListPriceTables(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.PriceTableDocs())
}

func (h *Handler) CreateRule(c *gin.Context) {
	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rule, err := h.service.CreateRule(c.Request.Context(), req)
	if err != nil {
		h.writeRuleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toRuleResponse(*rule))
}

func (h *Handler) UpdateRule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rule ID")
		return
	}

	var req RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rule, err := h.service.UpdateRule(c.Request.Context(), id, req)
	if err != nil {
		h.writeRuleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toRuleResponse(*rule))
}

func (h *Handler) DeleteRule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rule ID")
		return
	}

	if err := h.service.DeleteRule(c.Request.Context(), id); err != nil {
		h.writeRuleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Price rule deleted"})
}

func (h *Handler) writeRuleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Facility or rule not found")
	case errors.Is(err, ErrInvalidRule):
		response.Error(c, http.StatusBadRequest, "INVALID_RULE", "Rule dates or times are invalid")
	case errors.Is(err, ErrCurrencyMismatch):
		response.Error(c, http.StatusConflict, "CURRENCY_MISMATCH", "Facility already has rules in a different currency")
	default:
		response.Error(c, http.StatusInternalServerError, "PRICE_RULE_FAILED", "Failed to store price rule")
	}
}
