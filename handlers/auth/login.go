package auth

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass-api/config"
	"github.com/sahilchouksey/college-compass-api/utils/auth"
	"github.com/sahilchouksey/college-compass-api/utils/middleware"
	"github.com/sahilchouksey/college-compass-api/utils/response"
	"gorm.io/gorm"
)

// CredentialChecker reports whether a username/password pair is the
// admin's. Injected so deployments can swap the credential source.
type CredentialChecker func(username, password string) bool

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	checkCredentials     CredentialChecker
	jwtManager           *auth.JWTManager
	blacklistService     *auth.BlacklistService
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler checking against the
// env-configured admin credential pair
func NewAuthHandler(cfg *config.EnviornmentVariable, db *gorm.DB, jwtManager *auth.JWTManager, bfp *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		checkCredentials:     EnvCredentialChecker(cfg),
		jwtManager:           jwtManager,
		blacklistService:     auth.NewBlacklistService(db),
		bruteForceProtection: bfp,
	}
}

// NewAuthHandlerWithChecker creates an auth handler with a custom
// credential source
func NewAuthHandlerWithChecker(check CredentialChecker, db *gorm.DB, jwtManager *auth.JWTManager, bfp *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		checkCredentials:     check,
		jwtManager:           jwtManager,
		blacklistService:     auth.NewBlacklistService(db),
		bruteForceProtection: bfp,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // in seconds
}

// Login handles admin login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	ip := c.IP()

	if !h.checkCredentials(req.Username, req.Password) {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	// Clear failed attempts on successful login
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	accessToken, _, err := h.jwtManager.GenerateAccessToken(req.Username)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	res := LoginResponse{
		Username:    req.Username,
		AccessToken: accessToken,
		ExpiresIn:   int((24 * time.Hour).Seconds()),
	}

	return response.Success(c, res)
}

// EnvCredentialChecker checks the submitted pair against the configured
// admin credentials. A bcrypt hash wins over the plain-text fallback when
// both are configured.
func EnvCredentialChecker(cfg *config.EnviornmentVariable) CredentialChecker {
	return func(username, password string) bool {
		if subtle.ConstantTimeCompare([]byte(username), []byte(cfg.ADMIN_USERNAME)) != 1 {
			return false
		}

		if cfg.ADMIN_PASSWORD_HASH != "" {
			return auth.VerifyPassword(cfg.ADMIN_PASSWORD_HASH, password) == nil
		}
		if cfg.ADMIN_PASSWORD != "" {
			return subtle.ConstantTimeCompare([]byte(password), []byte(cfg.ADMIN_PASSWORD)) == 1
		}

		return false
	}
}
