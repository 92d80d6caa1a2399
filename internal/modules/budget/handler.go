package budget

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	tableGroup := protected.Group("/tables")
	tableGroup.Use(middleware.RequirePermission(authz.ActionViewBudgetTables))
	{
		tableGroup.GET("/:id", h.GetTable)
		tableGroup.GET("/:id/needs-per-department", h.NeedsPerDepartment)
		tableGroup.GET("/:id/limits-per-department", h.LimitsPerDepartment)
		tableGroup.GET("/:id/total-budget", h.TotalBudget)
	}

	rowGroup := protected.Group("/rows")
	rowGroup.Use(middleware.RequirePermission(authz.ActionSubmitRowData))
	{
		rowGroup.POST("/:id/data", h.SubmitRowData)
	}

	refGroup := protected.Group("/budget-refs")
	refGroup.Use(middleware.RequirePermission(authz.ActionViewBudgetTables))
	{
		refGroup.GET("/departments", h.ListDepartments)
		refGroup.GET("/divisions", h.ListDivisions)
		refGroup.GET("/divisions/:id/chapters", h.ListChapters)
		refGroup.GET("/chapters/:value/paragraphs", h.ListParagraphs)
	}
}

func (h *Handler) GetTable(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table ID")
		return
	}

	table, err := h.service.TableHierarchy(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, table)
}

func (h *Handler) NeedsPerDepartment(c *gin.Context) {
	h.aggregate(c, h.service.NeedsPerDepartment)
}

func (h *Handler) LimitsPerDepartment(c *gin.Context) {
	h.aggregate(c, h.service.LimitsPerDepartment)
}

func (h *Handler) aggregate(c *gin.Context, fn func(ctx context.Context, tableID int64) (map[string]float64, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table ID")
		return
	}

	totals, err := fn(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, totals)
}

func (h *Handler) TotalBudget(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table ID")
		return
	}

	total, err := h.service.TotalBudget(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, total)
}

func (h *Handler) SubmitRowData(c *gin.Context) {
	rowID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid row ID")
		return
	}

	var req SubmitRowDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	isAdmin := domain.Role(c.GetString("role")) == domain.RoleAdmin

	var userDept *int64
	if v, ok := c.Get("department_id"); ok {
		dept := v.(int64)
		userDept = &dept
	}

	version, err := h.service.SubmitRowData(c.Request.Context(), userID, userDept, isAdmin, rowID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toRowDataResponse(*version))
}

func (h *Handler) ListDepartments(c *gin.Context) {
	departments, err := h.service.ListDepartments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load departments")
		return
	}
	response.Success(c, http.StatusOK, departments)
}

func (h *Handler) ListDivisions(c *gin.Context) {
	divisions, err := h.service.ListDivisions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load divisions")
		return
	}
	response.Success(c, http.StatusOK, divisions)
}

func (h *Handler) ListChapters(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid division ID")
		return
	}

	chapters, err := h.service.ListChapters(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Division not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load chapters")
		return
	}
	response.Success(c, http.StatusOK, chapters)
}

func (h *Handler) ListParagraphs(c *gin.Context) {
	paragraphs, err := h.service.ListParagraphs(c.Request.Context(), c.Param("value"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Chapter not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load paragraphs")
		return
	}
	response.Success(c, http.StatusOK, paragraphs)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Table or row not found")
	case errors.Is(err, ErrTableClosed):
		response.Error(c, http.StatusConflict, "TABLE_CLOSED", "Budget table is closed for editing")
	case errors.Is(err, ErrWindowClosed):
		response.Error(c, http.StatusConflict, "WINDOW_CLOSED", "Department editing window is closed")
	case errors.Is(err, ErrWrongDepartment):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Row belongs to another department")
	case errors.Is(err, ErrNoDepartment):
		response.Error(c, http.StatusForbidden, "NO_DEPARTMENT", "Account has no department assigned")
	default:
		response.Error(c, http.StatusInternalServerError, "BUDGET_FAILED", "Failed to process budget request")
	}
}
