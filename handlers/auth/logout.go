package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass-api/utils/middleware"
	"github.com/sahilchouksey/college-compass-api/utils/response"
)

// Logout revokes the current admin token. The JTI goes onto the
// blacklist until the token would have expired anyway.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok || claims == nil {
		return response.Unauthorized(c, "Not authenticated")
	}

	jti, _ := middleware.GetTokenJTI(c)
	if jti == "" || claims.ExpiresAt == nil {
		return response.BadRequest(c, "Token cannot be revoked")
	}

	if err := h.blacklistService.RevokeToken(c.Context(), jti, claims.ExpiresAt.Time, "logout"); err != nil {
		return response.InternalServerError(c, "Failed to revoke token")
	}

	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}
