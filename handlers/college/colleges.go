package college

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass-api/catalog"
	"github.com/sahilchouksey/college-compass-api/model"
	"github.com/sahilchouksey/college-compass-api/utils/cache"
	"github.com/sahilchouksey/college-compass-api/utils/middleware"
	"github.com/sahilchouksey/college-compass-api/utils/response"
	"github.com/sahilchouksey/college-compass-api/utils/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const feedCacheKey = "colleges:feed"
const feedCacheTTL = 60 * time.Second

// CollegeHandler handles college catalog requests
type CollegeHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	cache     *cache.RedisCache // optional, feed caching only
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(db *gorm.DB, redisCache *cache.RedisCache) *CollegeHandler {
	return &CollegeHandler{
		db:        db,
		validator: validation.NewValidator(),
		cache:     redisCache,
	}
}

// CollegeRequest represents the request body for creating a college
type CollegeRequest struct {
	Name           string              `json:"name" validate:"required,min=3,max=255"`
	Ownership      string              `json:"ownership" validate:"required,oneof=Government Private"`
	Category       string              `json:"category" validate:"required,oneof=Medical Dental Pharma"`
	State          string              `json:"state" validate:"required,min=2,max=100"`
	City           string              `json:"city" validate:"required,min=2,max=100"`
	Established    int                 `json:"established" validate:"omitempty,gte=1800,lte=2100"`
	Courses        []string            `json:"courses" validate:"required,min=1"`
	CoursesAndFees []catalog.CourseFee `json:"coursesAndFees"`
	Amenities      []string            `json:"amenities"`
	Cutoff         map[string]string   `json:"cutoff"`
	Faculty        catalog.Faculty     `json:"faculty"`
	Placements     catalog.Placements  `json:"placements"`
	Ranking        catalog.Ranking     `json:"ranking"`
	Overview       string              `json:"overview" validate:"omitempty,max=10000"`
	ApprovedBy     string              `json:"approvedBy" validate:"omitempty,max=255"`
	CampusSize     string              `json:"campusSize" validate:"omitempty,max=100"`
}

// UpdateCollegeRequest represents the request body for updating a college.
// Absent fields leave the stored value untouched.
type UpdateCollegeRequest struct {
	Name           *string             `json:"name" validate:"omitempty,min=3,max=255"`
	Ownership      *string             `json:"ownership" validate:"omitempty,oneof=Government Private"`
	Category       *string             `json:"category" validate:"omitempty,oneof=Medical Dental Pharma"`
	State          *string             `json:"state" validate:"omitempty,min=2,max=100"`
	City           *string             `json:"city" validate:"omitempty,min=2,max=100"`
	Established    *int                `json:"established" validate:"omitempty,gte=1800,lte=2100"`
	Courses        []string            `json:"courses"`
	CoursesAndFees []catalog.CourseFee `json:"coursesAndFees"`
	Amenities      []string            `json:"amenities"`
	Cutoff         map[string]string   `json:"cutoff"`
	Faculty        *catalog.Faculty    `json:"faculty"`
	Placements     *catalog.Placements `json:"placements"`
	Ranking        *catalog.Ranking    `json:"ranking"`
	Overview       *string             `json:"overview" validate:"omitempty,max=10000"`
	ApprovedBy     *string             `json:"approvedBy" validate:"omitempty,max=255"`
	CampusSize     *string             `json:"campusSize" validate:"omitempty,max=100"`
}

// toRecord converts a stored college to its feed representation
func toRecord(c model.College) catalog.Record {
	return catalog.Record{
		ID:             int(c.ID),
		Slug:           c.Slug,
		Name:           c.Name,
		Ownership:      c.Ownership,
		Category:       c.Category,
		State:          c.State,
		City:           c.City,
		Established:    c.Established,
		Courses:        c.Courses,
		CoursesAndFees: c.CoursesAndFees,
		Amenities:      c.Amenities,
		Cutoff:         c.Cutoff.Data(),
		Faculty:        c.Faculty.Data(),
		Placements:     c.Placements.Data(),
		Ranking:        c.Ranking.Data(),
		Logo:           c.Logo,
		Brochure:       c.Brochure,
		Overview:       c.Overview,
		ApprovedBy:     c.ApprovedBy,
		CampusSize:     c.CampusSize,
	}
}

// GetCollegesFeed handles GET /api/colleges.
// This is the flat feed the public site consumes: every college, no
// pagination, wrapped in a "colleges" envelope.
func (h *CollegeHandler) GetCollegesFeed(c *fiber.Ctx) error {
	// Serve from cache when possible
	if h.cache != nil {
		var cached []catalog.Record
		if err := h.cache.GetJSON(c.Context(), feedCacheKey, &cached); err == nil {
			return c.JSON(fiber.Map{"colleges": cached})
		}
	}

	var colleges []model.College
	if err := h.db.Order("id ASC").Find(&colleges).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch colleges")
	}

	records := make([]catalog.Record, 0, len(colleges))
	for _, col := range colleges {
		records = append(records, toRecord(col))
	}

	if h.cache != nil {
		h.cache.SetJSON(c.Context(), feedCacheKey, records, feedCacheTTL)
	}

	return c.JSON(fiber.Map{"colleges": records})
}

// ListColleges handles GET /api/v1/colleges (paginated admin listing)
func (h *CollegeHandler) ListColleges(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")
	ownership := c.Query("ownership", "")
	category := c.Query("category", "")
	state := c.Query("state", "")

	query := h.db.Model(&model.College{})

	if search != "" {
		query = query.Where("name ILIKE ? OR city ILIKE ? OR state ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if ownership != "" {
		query = query.Where("ownership = ?", ownership)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if state != "" {
		query = query.Where("state = ?", state)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count colleges")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var colleges []model.College
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&colleges).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch colleges")
	}

	return response.Paginated(c, colleges, pagination)
}

// GetCollege handles GET /api/v1/colleges/:id. The id segment accepts
// either the numeric id or the slug.
func (h *CollegeHandler) GetCollege(c *fiber.Ctx) error {
	college, err := findCollege(h.db, c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	return response.Success(c, toRecord(*college))
}

// CreateCollege handles POST /api/colleges
func (h *CollegeHandler) CreateCollege(c *fiber.Ctx) error {
	var req CollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Name = validation.SanitizeString(req.Name)
	req.State = validation.SanitizeString(req.State)
	req.City = validation.SanitizeString(req.City)

	if msg := validateCollegeData(req.CoursesAndFees, req.Placements.GraduationPercentage); msg != "" {
		return response.BadRequest(c, msg)
	}

	// Slug is derived from the name; collisions get a numeric suffix
	slug, err := h.uniqueSlug(req.Name)
	if err != nil {
		return response.InternalServerError(c, "Failed to derive slug")
	}

	college := model.College{
		Slug:           slug,
		Name:           req.Name,
		Ownership:      req.Ownership,
		Category:       req.Category,
		State:          req.State,
		City:           req.City,
		Established:    req.Established,
		Courses:        req.Courses,
		CoursesAndFees: datatypes.NewJSONSlice(req.CoursesAndFees),
		Amenities:      req.Amenities,
		Cutoff:         datatypes.NewJSONType(req.Cutoff),
		Faculty:        datatypes.NewJSONType(req.Faculty),
		Placements:     datatypes.NewJSONType(req.Placements),
		Ranking:        datatypes.NewJSONType(req.Ranking),
		Overview:       req.Overview,
		ApprovedBy:     req.ApprovedBy,
		CampusSize:     req.CampusSize,
	}

	if err := h.db.Create(&college).Error; err != nil {
		return response.InternalServerError(c, "Failed to create college")
	}

	h.invalidateFeed(c)
	h.logAudit(c, "college_create", college.ID, nil, &college)

	return response.Created(c, toRecord(college))
}

// UpdateCollege handles PUT /api/colleges/:id
func (h *CollegeHandler) UpdateCollege(c *fiber.Ctx) error {
	college, err := findCollege(h.db, c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	var req UpdateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	old := *college

	// Renames keep the stored slug so deep links stay valid
	if req.Name != nil {
		college.Name = validation.SanitizeString(*req.Name)
	}
	if req.Ownership != nil {
		college.Ownership = *req.Ownership
	}
	if req.Category != nil {
		college.Category = *req.Category
	}
	if req.State != nil {
		college.State = validation.SanitizeString(*req.State)
	}
	if req.City != nil {
		college.City = validation.SanitizeString(*req.City)
	}
	if req.Established != nil {
		college.Established = *req.Established
	}
	if req.Courses != nil {
		college.Courses = req.Courses
	}
	if req.CoursesAndFees != nil {
		college.CoursesAndFees = datatypes.NewJSONSlice(req.CoursesAndFees)
	}
	if req.Amenities != nil {
		college.Amenities = req.Amenities
	}
	if req.Cutoff != nil {
		college.Cutoff = datatypes.NewJSONType(req.Cutoff)
	}
	if req.Faculty != nil {
		college.Faculty = datatypes.NewJSONType(*req.Faculty)
	}
	if req.Placements != nil {
		college.Placements = datatypes.NewJSONType(*req.Placements)
	}
	if req.Ranking != nil {
		college.Ranking = datatypes.NewJSONType(*req.Ranking)
	}
	if req.Overview != nil {
		college.Overview = *req.Overview
	}
	if req.ApprovedBy != nil {
		college.ApprovedBy = *req.ApprovedBy
	}
	if req.CampusSize != nil {
		college.CampusSize = *req.CampusSize
	}

	if msg := validateCollegeData(college.CoursesAndFees, college.Placements.Data().GraduationPercentage); msg != "" {
		return response.BadRequest(c, msg)
	}

	if err := h.db.Save(college).Error; err != nil {
		return response.InternalServerError(c, "Failed to update college")
	}

	h.invalidateFeed(c)
	h.logAudit(c, "college_update", college.ID, &old, college)

	return response.SuccessWithMessage(c, "College updated successfully", toRecord(*college))
}

// DeleteCollege handles DELETE /api/colleges/:id (soft delete)
func (h *CollegeHandler) DeleteCollege(c *fiber.Ctx) error {
	college, err := findCollege(h.db, c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	if err := h.db.Delete(college).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete college")
	}

	h.invalidateFeed(c)
	h.logAudit(c, "college_delete", college.ID, college, nil)

	return response.SuccessWithMessage(c, "College deleted successfully", nil)
}

// findCollege resolves an id path segment (numeric id or slug) to a row
func findCollege(db *gorm.DB, idParam string) (*model.College, error) {
	var college model.College
	if id, err := strconv.Atoi(idParam); err == nil {
		if err := db.First(&college, id).Error; err != nil {
			return nil, err
		}
		return &college, nil
	}

	if err := db.Where("slug = ?", idParam).First(&college).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

// uniqueSlug derives a slug from the name, suffixing a counter when the
// base form is already taken. Soft-deleted rows count as taken so a
// restore never collides.
func (h *CollegeHandler) uniqueSlug(name string) (string, error) {
	var slugs []string
	if err := h.db.Model(&model.College{}).Unscoped().Pluck("slug", &slugs).Error; err != nil {
		return "", err
	}

	return catalog.UniqueSlug(name, slugs), nil
}

// validateCollegeData runs the cross-field checks struct tags cannot
// express. Returns an empty string when the payload is coherent.
func validateCollegeData(fees []catalog.CourseFee, grad catalog.GraduationPercentage) string {
	for _, fee := range fees {
		if fee.Seats < 0 {
			return "Course seats cannot be negative"
		}
		if fee.Name == "" {
			return "Course fee entries need a course name"
		}
		if fee.Level != "" && fee.Level != "UG" && fee.Level != "PG" {
			return "Course level must be UG or PG"
		}
	}

	if len(grad.Years) != len(grad.UG) || len(grad.Years) != len(grad.PG) {
		if len(grad.Years)+len(grad.UG)+len(grad.PG) > 0 {
			return "Graduation percentage series must cover the same years"
		}
	}

	return ""
}

// invalidateFeed drops the cached feed after a mutation
func (h *CollegeHandler) invalidateFeed(c *fiber.Ctx) {
	if h.cache != nil {
		h.cache.Delete(c.Context(), feedCacheKey)
	}
}

// logAudit records a catalog mutation in the audit trail. Failures are
// swallowed, mutations must not fail on audit problems.
func (h *CollegeHandler) logAudit(c *fiber.Ctx, action string, resourceID uint, oldVal, newVal *model.College) {
	username, _ := middleware.GetAdminUsername(c)

	entry := model.AdminAuditLog{
		Username:   username,
		Action:     action,
		Resource:   "college",
		ResourceID: resourceID,
		IPAddress:  c.IP(),
	}
	if oldVal != nil {
		if b, err := json.Marshal(oldVal); err == nil {
			entry.OldValue = string(b)
		}
	}
	if newVal != nil {
		if b, err := json.Marshal(newVal); err == nil {
			entry.NewValue = string(b)
		}
	}

	h.db.Create(&entry)
}
