package handlers

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass-api/database"
)

func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
