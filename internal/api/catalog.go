package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/pricing"
	"github.com/witherings/PocePao-sub001/internal/service"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new instance of CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetMenu lists the menu --> GET /menu
func (h *CatalogHandler) GetMenu(c echo.Context) error {
	items, err := h.catalogService.GetMenuItems(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, items)
}

// GetMenuItem returns one menu item --> GET /menu/:id
func (h *CatalogHandler) GetMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	item, err := h.catalogService.GetMenuItemByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, item)
}

// CreateMenuItem creates a menu item --> POST /admin/menu
func (h *CatalogHandler) CreateMenuItem(c echo.Context) error {
	item := entity.MenuItem{}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.catalogService.CreateMenuItem(c.Request().Context(), &item)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, created)
}

// UpdateMenuItem updates a menu item --> PUT /admin/menu/:id
func (h *CatalogHandler) UpdateMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	item := entity.MenuItem{}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	item.ID = id

	updated, err := h.catalogService.UpdateMenuItem(c.Request().Context(), &item)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, updated)
}

// DeleteMenuItem deletes a menu item --> DELETE /admin/menu/:id
func (h *CatalogHandler) DeleteMenuItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.catalogService.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}

// GetIngredients lists the bowl builder catalog --> GET /ingredients
func (h *CatalogHandler) GetIngredients(c echo.Context) error {
	ingredients, err := h.catalogService.GetIngredients(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, ingredients)
}

// CreateIngredient creates an ingredient --> POST /admin/ingredients
func (h *CatalogHandler) CreateIngredient(c echo.Context) error {
	ing := entity.Ingredient{}
	if err := c.Bind(&ing); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.catalogService.CreateIngredient(c.Request().Context(), &ing)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, created)
}

// UpdateIngredient updates an ingredient --> PUT /admin/ingredients/:id
func (h *CatalogHandler) UpdateIngredient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	ing := entity.Ingredient{}
	if err := c.Bind(&ing); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	ing.ID = id

	updated, err := h.catalogService.UpdateIngredient(c.Request().Context(), &ing)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, updated)
}

// DeleteIngredient deletes an ingredient --> DELETE /admin/ingredients/:id
func (h *CatalogHandler) DeleteIngredient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.catalogService.DeleteIngredient(c.Request().Context(), id); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}

// PriceBowl prices a custom bowl --> POST /bowls/price
func (h *CatalogHandler) PriceBowl(c echo.Context) error {
	var req struct {
		Selection entity.BowlSelection `json:"selection"`
		Size      string               `json:"size"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	if req.Size != entity.SizeKlein && req.Size != entity.SizeStandard {
		return c.JSON(400, map[string]string{"error": "Invalid size"})
	}

	breakdown, err := h.catalogService.PriceBowl(c.Request().Context(), req.Selection, req.Size)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]interface{}{
		"breakdown":       breakdown,
		"total":           pricing.FormatPrice(breakdown.Total),
		"total_formatted": pricing.FormatPriceWithCurrency(breakdown.Total),
	})
}

// GetStartingPrices answers the "ab €X" display --> GET /bowls/starting-prices
func (h *CatalogHandler) GetStartingPrices(c echo.Context) error {
	minimums, err := h.catalogService.StartingPrices(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]interface{}{
		"klein_min":     minimums.KleinMin,
		"standard_min":  minimums.StandardMin,
		"klein_text":    pricing.FormatPriceWithCurrency(minimums.KleinMin),
		"standard_text": pricing.FormatPriceWithCurrency(minimums.StandardMin),
	})
}
