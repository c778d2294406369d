package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/service"
)

type SiteHandler struct {
	siteService service.SiteService
}

// NewSiteHandler creates a new instance of SiteHandler
func NewSiteHandler(siteService service.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// GetGallery lists gallery images --> GET /gallery
func (h *SiteHandler) GetGallery(c echo.Context) error {
	images, err := h.siteService.GetGallery(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, images)
}

// CreateGalleryImage registers an uploaded image --> POST /admin/gallery
func (h *SiteHandler) CreateGalleryImage(c echo.Context) error {
	img := entity.GalleryImage{}
	if err := c.Bind(&img); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.siteService.CreateGalleryImage(c.Request().Context(), &img)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, created)
}

// UpdateGalleryImage edits title/position --> PUT /admin/gallery/:id
func (h *SiteHandler) UpdateGalleryImage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	img := entity.GalleryImage{}
	if err := c.Bind(&img); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	img.ID = id

	updated, err := h.siteService.UpdateGalleryImage(c.Request().Context(), &img)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, updated)
}

// DeleteGalleryImage removes an image row --> DELETE /admin/gallery/:id
func (h *SiteHandler) DeleteGalleryImage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.siteService.DeleteGalleryImage(c.Request().Context(), id); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}

// GetContentBlocks lists all blocks --> GET /content
func (h *SiteHandler) GetContentBlocks(c echo.Context) error {
	blocks, err := h.siteService.GetContentBlocks(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, blocks)
}

// GetContentBlock returns one block by slug --> GET /content/:slug
func (h *SiteHandler) GetContentBlock(c echo.Context) error {
	block, err := h.siteService.GetContentBlock(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, block)
}

// UpsertContentBlock creates or replaces a block --> PUT /admin/content/:slug
func (h *SiteHandler) UpsertContentBlock(c echo.Context) error {
	block := entity.ContentBlock{}
	if err := c.Bind(&block); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	block.Slug = c.Param("slug")

	saved, err := h.siteService.UpsertContentBlock(c.Request().Context(), &block)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, saved)
}

// DeleteContentBlock removes a block --> DELETE /admin/content/:slug
func (h *SiteHandler) DeleteContentBlock(c echo.Context) error {
	if err := h.siteService.DeleteContentBlock(c.Request().Context(), c.Param("slug")); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}
