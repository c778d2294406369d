package api

import (
	"github.com/labstack/echo/v4"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/service"
)

// SessionHeader identifies the caller's cart. The client generates an opaque
// id once and sends it with every cart request.
const SessionHeader = "X-Cart-Session"

type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new instance of CartHandler
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) session(c echo.Context) (string, bool) {
	session := c.Request().Header.Get(SessionHeader)
	return session, session != ""
}

// GetCart returns the current cart --> GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	session, ok := h.session(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "Missing cart session"})
	}

	cartView, err := h.cartService.GetCart(c.Request().Context(), session)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cartView)
}

// AddItem adds a line to the cart --> POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	session, ok := h.session(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "Missing cart session"})
	}

	line := entity.CartLine{}
	if err := c.Bind(&line); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if line.ID == "" {
		return c.JSON(400, map[string]string{"error": "Missing line id"})
	}

	cartView, err := h.cartService.AddItem(c.Request().Context(), session, line)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cartView)
}

// UpdateQuantity sets a line quantity --> PUT /cart/items/:id
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	session, ok := h.session(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "Missing cart session"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	cartView, err := h.cartService.UpdateQuantity(c.Request().Context(), session, c.Param("id"), req.Quantity)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cartView)
}

// UpdateItem merges display fields into a line --> PATCH /cart/items/:id
func (h *CartHandler) UpdateItem(c echo.Context) error {
	session, ok := h.session(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "Missing cart session"})
	}

	update := entity.CartUpdate{}
	if err := c.Bind(&update); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	cartView, err := h.cartService.UpdateItem(c.Request().Context(), session, c.Param("id"), update)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cartView)
}

// RemoveItem removes one line --> DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	session, ok := h.session(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "Missing cart session"})
	}

	cartView, err := h.cartService.RemoveItem(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cartView)
}

// ClearCart empties the cart --> DELETE /cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	session, ok := h.session(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "Missing cart session"})
	}

	cartView, err := h.cartService.ClearCart(c.Request().Context(), session)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cartView)
}
