package api

import (
	"github.com/labstack/echo/v4"

	"github.com/witherings/PocePao-sub001/internal/service"
)

// Maintenance answers 503 on public routes while the site is switched off.
// The admin panel and the health probe are registered outside the guarded
// groups so the switch can always be turned back.
func Maintenance(settingsService *service.SettingsService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if settingsService.MaintenanceMode(c.Request().Context()) {
				return c.JSON(503, map[string]string{"error": "maintenance"})
			}
			return next(c)
		}
	}
}
