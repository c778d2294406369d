package api

import (
	"github.com/labstack/echo/v4"

	"github.com/witherings/PocePao-sub001/internal/service"
)

// AdminHandler covers login, snapshots and the maintenance toggle.
type AdminHandler struct {
	authService     service.AuthService
	snapshotService service.SnapshotService
	settingsService service.SettingsService
}

// NewAdminHandler creates a new instance of AdminHandler
func NewAdminHandler(authService service.AuthService, snapshotService service.SnapshotService, settingsService service.SettingsService) *AdminHandler {
	return &AdminHandler{
		authService:     authService,
		snapshotService: snapshotService,
		settingsService: settingsService,
	}
}

// Login signs an admin in --> POST /admin/login
func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	login := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}

	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	token, err := h.authService.Login(ctx, login.Email, login.Password)
	if err != nil {
		return c.JSON(401, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"token": token})
}

// CreateSnapshot stores a copy of the editable catalog --> POST /admin/snapshots
func (h *AdminHandler) CreateSnapshot(c echo.Context) error {
	var req struct {
		Label string `json:"label"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	snap, err := h.snapshotService.CreateSnapshot(c.Request().Context(), req.Label)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, snap)
}

// GetSnapshots lists snapshot metadata --> GET /admin/snapshots
func (h *AdminHandler) GetSnapshots(c echo.Context) error {
	snapshots, err := h.snapshotService.GetSnapshots(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, snapshots)
}

// RestoreSnapshot replaces the catalog from a snapshot --> POST /admin/snapshots/:id/restore
func (h *AdminHandler) RestoreSnapshot(c echo.Context) error {
	if err := h.snapshotService.RestoreSnapshot(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]string{"message": "restored"})
}

// DeleteSnapshot removes a snapshot --> DELETE /admin/snapshots/:id
func (h *AdminHandler) DeleteSnapshot(c echo.Context) error {
	if err := h.snapshotService.DeleteSnapshot(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}

// GetMaintenance reports the maintenance flag --> GET /admin/settings/maintenance
func (h *AdminHandler) GetMaintenance(c echo.Context) error {
	return c.JSON(200, map[string]bool{"maintenance": h.settingsService.MaintenanceMode(c.Request().Context())})
}

// SetMaintenance toggles the public site off/on --> PUT /admin/settings/maintenance
func (h *AdminHandler) SetMaintenance(c echo.Context) error {
	var req struct {
		Maintenance bool `json:"maintenance"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.settingsService.SetMaintenanceMode(c.Request().Context(), req.Maintenance); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]bool{"maintenance": req.Maintenance})
}
