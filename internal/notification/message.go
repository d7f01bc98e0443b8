package notification

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

// FormatOrderMessageは注文サマリを組み立てる。同じ注文なら必ず同じ文字列。
// 空のフィールドの行は出さない。
func FormatOrderMessage(order model.Order, items []model.OrderItem) string {
	var b strings.Builder

	b.WriteString("🛒 *New Order Received*\n\n")
	b.WriteString("Order Number: *" + order.OrderNumber + "*\n")
	b.WriteString("Status: *" + string(order.Status) + "*\n")
	b.WriteString("Total: *$" + formatAmount(order.Total) + "*\n\n")

	b.WriteString("*Customer Details:*\n")
	ship := order.ShippingAddress
	if ship.Name != "" {
		b.WriteString("Name: " + ship.Name + "\n")
	}
	if ship.Phone != "" {
		b.WriteString("Phone: " + ship.Phone + "\n")
	}
	if ship.Email != "" {
		b.WriteString("Email: " + ship.Email + "\n")
	}

	b.WriteString("\n*Shipping Address:*\n")
	if ship.Address != "" {
		b.WriteString(ship.Address + "\n")
	}
	if ship.City != "" {
		b.WriteString(ship.City)
	}
	if ship.State != "" {
		b.WriteString(", " + ship.State)
	}
	if ship.PostalCode != "" {
		b.WriteString(" " + ship.PostalCode)
	}

	b.WriteString("\n\n*Order Items:*\n")
	for _, it := range items {
		lineTotal := it.UnitPriceSnapshot.Mul(decimal.NewFromInt(it.Quantity))
		b.WriteString("• " + it.ProductNameSnapshot +
			" (Qty: " + strconv.FormatInt(it.Quantity, 10) + ") - $" +
			formatAmount(lineTotal) + "\n")
	}

	b.WriteString("\n*Payment:*\n")
	b.WriteString("Method: " + order.PaymentMethod + "\n")
	b.WriteString("Status: " + string(order.PaymentStatus) + "\n")

	return b.String()
}

// formatAmountは小数2桁＋3桁ごとのカンマ区切り（1234.5 → "1,234.50"）。
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}
	return sign + intPart + fracPart
}
