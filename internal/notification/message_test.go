package notification

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/model"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleOrder() (model.Order, []model.OrderItem) {
	order := model.Order{
		OrderNumber: "ORD-AB12CD34",
		Status:      model.OrderStatusPending,
		Total:       money("20.00"),
		ShippingAddress: model.Address{
			Name:    "Jane",
			Phone:   "555",
			Address: "1 Main St",
			City:    "Town",
		},
		PaymentMethod: "cash",
		PaymentStatus: model.PaymentStatusPending,
	}
	items := []model.OrderItem{
		{ProductNameSnapshot: "Widget", UnitPriceSnapshot: money("10.00"), Quantity: 2},
	}
	return order, items
}

func TestFormatOrderMessage_ContainsExpectedLines(t *testing.T) {
	order, items := sampleOrder()
	msg := FormatOrderMessage(order, items)

	assert.Contains(t, msg, "🛒 *New Order Received*")
	assert.Contains(t, msg, "Order Number: *ORD-AB12CD34*")
	assert.Contains(t, msg, "Status: *pending*")
	assert.Contains(t, msg, "Total: *$20.00*")
	assert.Contains(t, msg, "Name: Jane")
	assert.Contains(t, msg, "Phone: 555")
	assert.Contains(t, msg, "1 Main St")
	assert.Contains(t, msg, "Town")
	assert.Contains(t, msg, "• Widget (Qty: 2) - $20.00")
	assert.Contains(t, msg, "Method: cash")
	assert.Contains(t, msg, "Status: pending")

	//emailが無いならEmail行は出さない
	assert.NotContains(t, msg, "Email:")
}

func TestFormatOrderMessage_FullAddress(t *testing.T) {
	order, items := sampleOrder()
	order.ShippingAddress.Email = "jane@example.com"
	order.ShippingAddress.State = "WC"
	order.ShippingAddress.PostalCode = "1234"

	msg := FormatOrderMessage(order, items)
	assert.Contains(t, msg, "Email: jane@example.com")
	assert.Contains(t, msg, "Town, WC 1234")
}

func TestFormatOrderMessage_ThousandsGrouping(t *testing.T) {
	order, _ := sampleOrder()
	order.Total = money("1234.50")
	items := []model.OrderItem{
		{ProductNameSnapshot: "Bulk Widget", UnitPriceSnapshot: money("1000.00"), Quantity: 2},
	}

	msg := FormatOrderMessage(order, items)
	assert.Contains(t, msg, "Total: *$1,234.50*")
	assert.Contains(t, msg, "• Bulk Widget (Qty: 2) - $2,000.00")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", formatAmount(money("0")))
	assert.Equal(t, "999.99", formatAmount(money("999.99")))
	assert.Equal(t, "1,000.00", formatAmount(money("1000")))
	assert.Equal(t, "1,234,567.89", formatAmount(money("1234567.89")))
	assert.Equal(t, "-1,234.50", formatAmount(money("-1234.5")))
}

func TestFormatOrderMessage_Deterministic(t *testing.T) {
	order, items := sampleOrder()
	assert.Equal(t, FormatOrderMessage(order, items), FormatOrderMessage(order, items))
}

func TestFormatOrderMessage_MultipleItems(t *testing.T) {
	order, items := sampleOrder()
	items = append(items, model.OrderItem{
		ProductNameSnapshot: "Gadget", UnitPriceSnapshot: money("2.50"), Quantity: 3,
	})

	msg := FormatOrderMessage(order, items)
	widget := strings.Index(msg, "• Widget (Qty: 2) - $20.00")
	gadget := strings.Index(msg, "• Gadget (Qty: 3) - $7.50")
	assert.GreaterOrEqual(t, widget, 0)
	assert.Greater(t, gadget, widget)
}
