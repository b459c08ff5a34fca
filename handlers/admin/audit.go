package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass-api/model"
	"github.com/sahilchouksey/college-compass-api/utils/response"
	"gorm.io/gorm"
)

// AuditHandler serves the admin audit trail
type AuditHandler struct {
	db *gorm.DB
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

// ListAuditLogs handles GET /api/v1/admin/audit-logs
func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	action := c.Query("action", "")
	resourceID, _ := strconv.Atoi(c.Query("resource_id", "0"))

	query := h.db.Model(&model.AdminAuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}
	if resourceID > 0 {
		query = query.Where("resource_id = ?", resourceID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count audit logs")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var logs []model.AdminAuditLog
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch audit logs")
	}

	return response.Paginated(c, logs, pagination)
}
