package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/witherings/PocePao-sub001/internal/entity"
	"github.com/witherings/PocePao-sub001/internal/service"
)

type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new instance of ReservationHandler
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// CreateReservation accepts a table reservation --> POST /reservations
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	res := entity.Reservation{}
	if err := c.Bind(&res); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.reservationService.CreateReservation(c.Request().Context(), &res)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, created)
}

// GetReservations lists reservations --> GET /admin/reservations
func (h *ReservationHandler) GetReservations(c echo.Context) error {
	reservations, err := h.reservationService.GetReservations(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, reservations)
}

// UpdateReservationStatus confirms or declines --> PUT /admin/reservations/:id/status
func (h *ReservationHandler) UpdateReservationStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	res, err := h.reservationService.UpdateReservationStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, res)
}

// DeleteReservation removes a reservation --> DELETE /admin/reservations/:id
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.reservationService.DeleteReservation(c.Request().Context(), id); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]string{"message": "deleted"})
}
