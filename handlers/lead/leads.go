package lead

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass-api/model"
	"github.com/sahilchouksey/college-compass-api/utils/response"
	"github.com/sahilchouksey/college-compass-api/utils/validation"
	"gorm.io/gorm"
)

// LeadHandler handles lead capture requests
type LeadHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(db *gorm.DB) *LeadHandler {
	return &LeadHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateLeadRequest represents the request body for capturing a lead.
// Phone is accepted as entered, the capture form does not constrain
// its format.
type CreateLeadRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Phone     string `json:"phone" validate:"required,min=1,max=50"`
	CollegeID uint   `json:"collegeId"`
	College   string `json:"college" validate:"omitempty,max=255"`
	Source    string `json:"source" validate:"omitempty,oneof=brochure counseling"`
}

// CreateLead handles POST /api/leads
func (h *LeadHandler) CreateLead(c *fiber.Ctx) error {
	var req CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	lead := model.Lead{
		Name:      validation.SanitizeString(req.Name),
		Phone:     validation.SanitizeString(req.Phone),
		CollegeID: req.CollegeID,
		College:   validation.SanitizeString(req.College),
		Source:    req.Source,
	}

	// Denormalize the college name when only an id was sent
	if lead.College == "" && lead.CollegeID > 0 {
		var college model.College
		if err := h.db.First(&college, lead.CollegeID).Error; err == nil {
			lead.College = college.Name
		}
	}

	if err := h.db.Create(&lead).Error; err != nil {
		return response.InternalServerError(c, "Failed to save lead")
	}

	return response.Created(c, lead)
}

// ListLeads handles GET /api/v1/leads (admin)
func (h *LeadHandler) ListLeads(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	collegeID, _ := strconv.Atoi(c.Query("college_id", "0"))

	query := h.db.Model(&model.Lead{})
	if collegeID > 0 {
		query = query.Where("college_id = ?", collegeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count leads")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var leads []model.Lead
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&leads).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch leads")
	}

	return response.Paginated(c, leads, pagination)
}

// GetLeadStats handles GET /api/v1/leads/stats (admin). Reads the
// aggregate maintained by the hourly cron job.
func (h *LeadHandler) GetLeadStats(c *fiber.Ctx) error {
	var stats []model.LeadStat
	if err := h.db.Order("lead_count DESC").Find(&stats).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch lead stats")
	}

	return response.Success(c, stats)
}
