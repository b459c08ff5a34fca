package college

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass-api/services/storage"
	"github.com/sahilchouksey/college-compass-api/utils/pdfvalidation"
	"github.com/sahilchouksey/college-compass-api/utils/response"
	"gorm.io/gorm"
)

const maxLogoSizeBytes = 2 * 1024 * 1024

// UploadHandler handles brochure and logo uploads for colleges
type UploadHandler struct {
	db     *gorm.DB
	spaces *storage.SpacesClient
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(db *gorm.DB, spaces *storage.SpacesClient) *UploadHandler {
	return &UploadHandler{
		db:     db,
		spaces: spaces,
	}
}

// UploadBrochure handles POST /api/v1/colleges/:id/brochure.
// The file must be a real PDF within the brochure limits; the stored
// URL replaces any previous brochure on the college.
func (h *UploadHandler) UploadBrochure(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "File storage is not configured")
	}

	college, err := findCollege(h.db, c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	file, err := c.FormFile("brochure")
	if err != nil {
		return response.BadRequest(c, "Brochure file is required")
	}

	result, err := pdfvalidation.ValidatePDFFile(file, pdfvalidation.BrochureLimits)
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to open uploaded file")
	}
	defer src.Close()

	key := storage.BrochureKey(college.Slug, file.Filename)
	url, err := h.spaces.UploadFile(c.Context(), key, src, "application/pdf")
	if err != nil {
		return response.InternalServerError(c, "Failed to store brochure")
	}

	college.Brochure = url
	if err := h.db.Save(college).Error; err != nil {
		return response.InternalServerError(c, "Failed to update college")
	}

	return response.SuccessWithMessage(c, "Brochure uploaded successfully", fiber.Map{
		"brochure": url,
		"pages":    result.PageCount,
	})
}

// UploadLogo handles POST /api/v1/colleges/:id/logo
func (h *UploadHandler) UploadLogo(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "File storage is not configured")
	}

	college, err := findCollege(h.db, c.Params("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return response.BadRequest(c, "Logo file is required")
	}

	if file.Size > maxLogoSizeBytes {
		return response.BadRequest(c, "Logo must be smaller than 2MB")
	}

	contentType := storage.GetContentType(file.Filename)
	if !strings.HasPrefix(contentType, "image/") {
		return response.BadRequest(c, "Logo must be a PNG, JPEG, SVG or WebP image")
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to open uploaded file")
	}
	defer src.Close()

	key := storage.LogoKey(college.Slug, file.Filename)
	url, err := h.spaces.UploadFile(c.Context(), key, src, contentType)
	if err != nil {
		return response.InternalServerError(c, "Failed to store logo")
	}

	college.Logo = url
	if err := h.db.Save(college).Error; err != nil {
		return response.InternalServerError(c, "Failed to update college")
	}

	return response.SuccessWithMessage(c, "Logo uploaded successfully", fiber.Map{
		"logo": url,
	})
}
