package export

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/middleware"
	"github.com/kokolodziejska/zagrane/internal/pkg/authz"
	"github.com/kokolodziejska/zagrane/internal/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/tables/:id/export", middleware.RequirePermission(authz.ActionExportTables), h.ExportTable)
}

// ExportTable streams the table as an xlsx attachment.
func (h *Handler) ExportTable(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table ID")
		return
	}

	f, table, err := h.service.BuildWorkbook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Budget table not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export table")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("budget-%d-%s.xlsx", table.Year, uuid.NewString())
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(c.Writer); err != nil {
		logrus.WithError(err).Error("Failed to write workbook to response")
	}
}
