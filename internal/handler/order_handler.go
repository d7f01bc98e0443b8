package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderCreateRequest struct {
	ShippingAddress    usecase.AddressInput     `json:"shipping_address"`
	BillingAddress     *usecase.AddressInput    `json:"billing_address"`
	PaymentMethod      string                   `json:"payment_method"`
	DeliveryLocationID *int64                   `json:"delivery_location_id"`
	RequiresDelivery   bool                     `json:"requires_delivery"`
	Items              []usecase.OrderItemInput `json:"items"`
}

type OrderCreateResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Order   usecase.OrderOutput `json:"order"`
}

type OrderDetailResponse struct {
	Success bool                `json:"success"`
	Order   usecase.OrderOutput `json:"order"`
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", h.create)
	g.GET("/orders/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		ShippingAddress:    req.ShippingAddress,
		BillingAddress:     req.BillingAddress,
		PaymentMethod:      req.PaymentMethod,
		DeliveryLocationID: req.DeliveryLocationID,
		RequiresDelivery:   req.RequiresDelivery,
		Items:              req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreateResponse{
		Success: true,
		Message: "Order created successfully",
		Order:   out,
	})
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OrderDetailResponse{Success: true, Order: out})
}
