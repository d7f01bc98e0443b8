package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

// /delivery-locations の公開API
type DeliveryLocationHandler struct {
	uc *usecase.DeliveryUsecase
}

// DI
func NewDeliveryLocationHandler(uc *usecase.DeliveryUsecase) *DeliveryLocationHandler {
	return &DeliveryLocationHandler{uc: uc}
}

func (h *DeliveryLocationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/delivery-locations", h.list)
	g.GET("/delivery-locations/:id/fee", h.fee)
}

func (h *DeliveryLocationHandler) list(c echo.Context) error {
	out, err := h.uc.ListLocations(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DeliveryLocationHandler) fee(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	out, err := h.uc.CalculateFee(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
