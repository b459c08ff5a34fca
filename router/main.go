package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass-api/config"
	"github.com/sahilchouksey/college-compass-api/database"
	"github.com/sahilchouksey/college-compass-api/handlers"
	admin_handlers "github.com/sahilchouksey/college-compass-api/handlers/admin"
	auth_handlers "github.com/sahilchouksey/college-compass-api/handlers/auth"
	college_handlers "github.com/sahilchouksey/college-compass-api/handlers/college"
	lead_handlers "github.com/sahilchouksey/college-compass-api/handlers/lead"
	"github.com/sahilchouksey/college-compass-api/services/storage"
	"github.com/sahilchouksey/college-compass-api/utils"
	"github.com/sahilchouksey/college-compass-api/utils/auth"
	"github.com/sahilchouksey/college-compass-api/utils/cache"
	"github.com/sahilchouksey/college-compass-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to read configuration")
	}

	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "college-compass-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: 24 * time.Hour,
		Issuer: jwtIssuer,
	})

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis backs feed caching and login brute force protection
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Feed caching and brute force protection will be disabled.", err)
		redisCache = nil
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Spaces client for brochure and logo uploads, optional in dev
	var spaces *storage.SpacesClient
	if getEnv.DO_SPACES_KEY != "" {
		spaces, err = storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: getEnv.DO_SPACES_KEY,
			SecretKey: getEnv.DO_SPACES_SECRET,
			Bucket:    getEnv.DO_SPACES_BUCKET,
			Region:    getEnv.DO_SPACES_REGION,
			Endpoint:  getEnv.DO_SPACES_ENDPOINT,
			CDNURL:    getEnv.DO_SPACES_CDN_URL,
		})
		if err != nil {
			log.Printf("Warning: Failed to create Spaces client: %v. Uploads will be disabled.", err)
			spaces = nil
		}
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(getEnv, db, jwtManager, bruteForceProtection)
	collegeHandler := college_handlers.NewCollegeHandler(db, redisCache)
	uploadHandler := college_handlers.NewUploadHandler(db, spaces)
	leadHandler := lead_handlers.NewLeadHandler(db)
	auditHandler := admin_handlers.NewAuditHandler(db)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:5173"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// Public catalog surface, consumed by the site
	publicAPI := app.Group("/api")
	publicAPI.Get("/colleges", collegeHandler.GetCollegesFeed)
	publicAPI.Post("/leads", leadHandler.CreateLead)

	// Catalog mutations share the public path shape but require admin auth
	publicAPI.Post("/colleges", authMiddleware.RequireAdmin(), collegeHandler.CreateCollege)
	publicAPI.Put("/colleges/:id", authMiddleware.RequireAdmin(), collegeHandler.UpdateCollege)
	publicAPI.Delete("/colleges/:id", authMiddleware.RequireAdmin(), collegeHandler.DeleteCollege)

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/logout", authMiddleware.RequireAdmin(), authHandler.Logout)

	// Colleges routes
	colleges := api.Group("/colleges")
	colleges.Get("/", collegeHandler.ListColleges)  // Public: paginated listing
	colleges.Get("/:id", collegeHandler.GetCollege) // Public: by id or slug
	colleges.Post("/:id/brochure", authMiddleware.RequireAdmin(), uploadHandler.UploadBrochure)
	colleges.Post("/:id/logo", authMiddleware.RequireAdmin(), uploadHandler.UploadLogo)

	// Leads routes (admin)
	leads := api.Group("/leads", authMiddleware.RequireAdmin())
	leads.Get("/", leadHandler.ListLeads)
	leads.Get("/stats", leadHandler.GetLeadStats)

	// Admin routes
	adminGroup := api.Group("/admin", authMiddleware.RequireAdmin())
	adminGroup.Get("/audit-logs", auditHandler.ListAuditLogs)
}
