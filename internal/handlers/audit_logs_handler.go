package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/httpresp"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List (admin): traça d'accions sobre reserves i torns, del més recent al
// més antic, filtrable per acció i per entitat.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	limit := 100
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 500 {
		limit = l
	}

	var logs []models.AuditLog
	if err := q.
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "Error al llistar el registre d'activitat.")
		return
	}

	httpresp.List(c, logs)
}
